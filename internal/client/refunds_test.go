package client

import (
	"context"
	"testing"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refundJSON = `{"id":"REF-1HQVFKY7VNWJ","status":"REQUESTED","type":"PARTIAL","method":"CREDIT_CARD",
	"amount":{"total":2000,"fees":0,"currency":"BRL"},
	"refundingInstrument":{"method":"CREDIT_CARD"},
	"createdAt":"2017-08-11T10:00:00.000-03"}`

func TestRefundsClient_RefundPayment(t *testing.T) {
	t.Parallel()

	httpClient := newTestServer(t, expectation{
		Method:     "POST",
		Path:       "/v2/payments/PAY-FRAAY8GN1HSB/refunds",
		Body:       `{"amount":2000}`,
		StatusCode: 201,
		Response:   refundJSON,
	})

	refund, err := NewRefundsClient(httpClient).RefundPayment(context.Background(), "PAY-FRAAY8GN1HSB",
		&moip.RefundRequest{Amount: moip.Int(2000)})
	require.NoError(t, err)
	assert.Equal(t, "REF-1HQVFKY7VNWJ", refund.ID)
	assert.Equal(t, moip.RefundStatusRequested, refund.Status)
	assert.Equal(t, "PARTIAL", refund.Type)
	assert.Equal(t, 2000, refund.Amount.GetTotal())
	assert.Equal(t, "CREDIT_CARD", refund.RefundingInstrument.Method)
}

func TestRefundsClient_RefundPaymentFullAmount(t *testing.T) {
	t.Parallel()

	httpClient := newTestServer(t, expectation{
		Method:     "POST",
		Path:       "/v2/payments/PAY-FRAAY8GN1HSB/refunds",
		Body:       `{}`,
		StatusCode: 201,
		Response:   `{"id":"REF-FULL","status":"COMPLETED","type":"FULL"}`,
	})

	refund, err := NewRefundsClient(httpClient).RefundPayment(context.Background(), "PAY-FRAAY8GN1HSB", nil)
	require.NoError(t, err)
	assert.Equal(t, "FULL", refund.Type)
	assert.Equal(t, moip.RefundStatusCompleted, refund.Status)
}

func TestRefundsClient_RefundOrderToBankAccount(t *testing.T) {
	t.Parallel()

	httpClient := newTestServer(t, expectation{
		Method: "POST",
		Path:   "/v2/orders/ORD-GOHHIF4Z6PLV/refunds",
		Body: `{"refundingInstrument":{"method":"BANK_ACCOUNT","bankAccount":{"type":"CHECKING","bankNumber":"001",
			"agencyNumber":"4444444","agencyCheckNumber":"2","accountNumber":"1234","accountCheckNumber":"4",
			"holder":{"fullname":"Nome do Portador","taxDocument":{"type":"CPF","number":"22222222222"}}}}}`,
		StatusCode: 201,
		Response:   `{"id":"REF-BANK","status":"REQUESTED","type":"FULL","refundingInstrument":{"method":"BANK_ACCOUNT"}}`,
	})

	refund, err := NewRefundsClient(httpClient).RefundOrder(context.Background(), "ORD-GOHHIF4Z6PLV", &moip.RefundRequest{
		RefundingInstrument: &moip.RefundingInstrument{
			Method: "BANK_ACCOUNT",
			BankAccount: &moip.BankAccount{
				Type:               "CHECKING",
				BankNumber:         "001",
				AgencyNumber:       "4444444",
				AgencyCheckNumber:  "2",
				AccountNumber:      "1234",
				AccountCheckNumber: "4",
				Holder:             &moip.Holder{Fullname: "Nome do Portador", TaxDocument: moip.CPF("22222222222")},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "REF-BANK", refund.ID)
	assert.Equal(t, "BANK_ACCOUNT", refund.RefundingInstrument.Method)
}

func TestRefundsClient_Get(t *testing.T) {
	t.Parallel()

	httpClient := newTestServer(t, expectation{
		Method:   "GET",
		Path:     "/v2/refunds/REF-1HQVFKY7VNWJ",
		Response: refundJSON,
	})

	refund, err := NewRefundsClient(httpClient).Get(context.Background(), "REF-1HQVFKY7VNWJ")
	require.NoError(t, err)
	assert.Equal(t, "REF-1HQVFKY7VNWJ", refund.ID)
	require.NotNil(t, refund.CreatedAt)
	assert.Equal(t, 11, refund.CreatedAt.Day())
}

func TestRefundsClient_ListForPayment(t *testing.T) {
	t.Parallel()

	httpClient := newTestServer(t, expectation{
		Method:   "GET",
		Path:     "/v2/payments/PAY-FRAAY8GN1HSB/refunds",
		Response: `{"refunds":[` + refundJSON + `,{"id":"REF-SECOND","status":"COMPLETED"}]}`,
	})

	list, err := NewRefundsClient(httpClient).ListForPayment(context.Background(), "PAY-FRAAY8GN1HSB")
	require.NoError(t, err)
	require.Len(t, list.Refunds, 2)
	assert.Equal(t, "REF-SECOND", list.Refunds[1].ID)
}

func TestRefundsClient_ServerError(t *testing.T) {
	t.Parallel()

	httpClient := newTestServer(t, expectation{
		Method:     "POST",
		Path:       "/v2/orders/ORD-1/refunds",
		Body:       `{}`,
		StatusCode: 500,
		Response:   `{"errors":[{"code":"ignored"}]}`,
	})

	refund, err := NewRefundsClient(httpClient).RefundOrder(context.Background(), "ORD-1", nil)
	require.Error(t, err)
	assert.Nil(t, refund)
	assert.True(t, moip.IsUnexpected(err))
	assert.Contains(t, err.Error(), "refunding order")
}

func TestRefundsClient_RequiresArguments(t *testing.T) {
	t.Parallel()

	refunds := NewRefundsClient(notCalled(t))
	ctx := context.Background()

	_, err := refunds.RefundPayment(ctx, "", nil)
	require.ErrorIs(t, err, moip.ErrIDRequired)

	_, err = refunds.RefundOrder(ctx, "", nil)
	require.ErrorIs(t, err, moip.ErrIDRequired)

	_, err = refunds.Get(ctx, "")
	require.ErrorIs(t, err, moip.ErrIDRequired)

	_, err = refunds.ListForPayment(ctx, "")
	require.ErrorIs(t, err, moip.ErrIDRequired)
}
