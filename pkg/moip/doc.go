// Package moip provides types, interfaces, and helpers for working with the
// Moip v2 payment API.
//
// # Overview
//
// The moip package defines the resource types (Order, Payment, Customer,
// Refund, Escrow, NotificationPreference, Account) and the interfaces of the
// resource clients (OrdersClient, PaymentsClient, ...). The moipclient package
// provides the concrete implementation, wiring configuration, transport and
// authentication.
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/moip/moip-sdk-go/pkg/moip"
//	  "github.com/moip/moip-sdk-go/pkg/moipclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := moipclient.NewWithBasicAuth(moip.Sandbox, "TOKEN", "KEY")
//	  if err != nil { log.Fatal(err) }
//
//	  payment, err := cli.Payments().Get(ctx, "PAY-NLCU4SP1IN9Y")
//	  if err != nil { log.Fatal(err) }
//	  _ = payment
//	}
//
// # Errors
//
// Every call performs a single HTTP round trip. Failures are classified:
// UnauthorizedError for 401, ValidationError carrying the API error list for
// other 4xx statuses, UnexpectedError for 5xx, TransportError for network
// faults and DecodeError for unreadable success bodies. Helpers such as
// IsUnauthorized, AsValidation and IsNotFound branch on them.
package moip
