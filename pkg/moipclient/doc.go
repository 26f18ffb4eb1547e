// Package moipclient provides the primary entry point for constructing a
// Moip v2 API client that implements the moip.Client interface.
//
// It layers configuration, HTTP transport and authentication on top of the
// resource interfaces and types defined in the moip package. Most applications
// import moipclient to build a client, then use the returned moip.Client to
// reach the resource clients: Orders(), Payments(), Refunds(), etc.
//
// Quick start
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
//
//	  // Basic authentication with the account token and key.
//	  cli, err := moipclient.NewWithBasicAuth(moip.Sandbox, "TOKEN", "KEY")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or an OAuth access token obtained through Moip Connect.
//	  cli, err = moipclient.NewWithOAuth(moip.Sandbox, "8a5f3b0e..._v2")
//
//	  // Or the full configuration.
//	  cli, err = moipclient.New(&moip.Config{
//	    APIEndpoint:    moip.Production,
//	    Token:          "TOKEN",
//	    Key:            "KEY",
//	    ConnectTimeout: 30 * time.Second,
//	    ReadTimeout:    60 * time.Second,
//	  })
//
//	  order, err := cli.Orders().Create(ctx, &moip.OrderRequest{OwnID: "pedido-1"})
//	  if err != nil { log.Fatal(err) }
//
//	  payment, err := cli.Payments().Create(ctx, order.ID, &moip.PaymentRequest{
//	    InstallmentCount:  1,
//	    FundingInstrument: moip.BoletoFunding(&moip.Boleto{}),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  log.Println(payment.Links.PayBoleto())
//	}
//
// Connect
//
// Applications acting on behalf of other merchants obtain tokens with
// NewConnect against moip.ConnectSandbox or moip.ConnectProduction, then
// build their API client with NewWithConnectToken so expired tokens are renewed.
package moipclient
