package moip

import (
	"time"

	"golang.org/x/oauth2"
)

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Orders

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses.
const (
	OrderStatusCreated       OrderStatus = "CREATED"
	OrderStatusWaiting       OrderStatus = "WAITING"
	OrderStatusPaid          OrderStatus = "PAID"
	OrderStatusNotPaid       OrderStatus = "NOT_PAID"
	OrderStatusReverted      OrderStatus = "REVERTED"
	OrderStatusPreAuthorized OrderStatus = "PRE_AUTHORIZED"
)

// Item is a line of an order.
type Item struct {
	Product  string `json:"product,omitempty"  yaml:"product,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Detail   string `json:"detail,omitempty"   yaml:"detail,omitempty"`
	Price    int    `json:"price,omitempty"    yaml:"price,omitempty"`
}

// Receiver is a party that receives part of an order's amount.
type Receiver struct {
	Type        string          `json:"type,omitempty"        yaml:"type,omitempty"`
	MoipAccount *MoipAccountRef `json:"moipAccount,omitempty" yaml:"moipAccount,omitempty"`
	Amount      *ReceiverAmount `json:"amount,omitempty"      yaml:"amount,omitempty"`
	FeePayor    *bool           `json:"feePayor,omitempty"    yaml:"feePayor,omitempty"`
}

// ReceiverAmount is either a fixed value or a percentual share.
type ReceiverAmount struct {
	Fixed      *int `json:"fixed,omitempty"      yaml:"fixed,omitempty"`
	Percentual *int `json:"percentual,omitempty" yaml:"percentual,omitempty"`
	Total      *int `json:"total,omitempty"      yaml:"total,omitempty"`
}

// MoipAccountRef references a Moip account.
type MoipAccountRef struct {
	ID       string `json:"id,omitempty"       yaml:"id,omitempty"`
	Login    string `json:"login,omitempty"    yaml:"login,omitempty"`
	Fullname string `json:"fullname,omitempty" yaml:"fullname,omitempty"`
}

// Order represents the order resource.
type Order struct {
	ID              string      `json:"id"                        yaml:"id"`
	OwnID           string      `json:"ownId,omitempty"           yaml:"ownId,omitempty"`
	Status          OrderStatus `json:"status,omitempty"          yaml:"status,omitempty"`
	Platform        string      `json:"platform,omitempty"        yaml:"platform,omitempty"`
	CreatedAt       *Timestamp  `json:"createdAt,omitempty"       yaml:"createdAt,omitempty"`
	UpdatedAt       *Timestamp  `json:"updatedAt,omitempty"       yaml:"updatedAt,omitempty"`
	Amount          *Amount     `json:"amount,omitempty"          yaml:"amount,omitempty"`
	Items           []Item      `json:"items,omitempty"           yaml:"items,omitempty"`
	Customer        *Customer   `json:"customer,omitempty"        yaml:"customer,omitempty"`
	Payments        []Payment   `json:"payments,omitempty"        yaml:"payments,omitempty"`
	Refunds         []Refund    `json:"refunds,omitempty"         yaml:"refunds,omitempty"`
	Escrows         []Escrow    `json:"escrows,omitempty"         yaml:"escrows,omitempty"`
	Events          []Event     `json:"events,omitempty"          yaml:"events,omitempty"`
	Receivers       []Receiver  `json:"receivers,omitempty"       yaml:"receivers,omitempty"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
	Links           Links       `json:"_links,omitempty"          yaml:"_links,omitempty"`
}

// OrderAmountRequest is the amount section of an order request.
type OrderAmountRequest struct {
	Currency  string     `json:"currency,omitempty"  yaml:"currency,omitempty"`
	Subtotals *Subtotals `json:"subtotals,omitempty" yaml:"subtotals,omitempty"`
}

// OrderRequest is the body used to create an order.
type OrderRequest struct {
	OwnID     string              `json:"ownId"               yaml:"ownId"`
	Amount    *OrderAmountRequest `json:"amount,omitempty"    yaml:"amount,omitempty"`
	Items     []Item              `json:"items,omitempty"     yaml:"items,omitempty"`
	Customer  *CustomerRequest    `json:"customer,omitempty"  yaml:"customer,omitempty"`
	Receivers []Receiver          `json:"receivers,omitempty" yaml:"receivers,omitempty"`
}

// OrderList is a page of orders.
type OrderList struct {
	Summary *ListSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Orders  []Order      `json:"orders"            yaml:"orders"`
	Links   Links        `json:"_links,omitempty"  yaml:"_links,omitempty"`
}

// ListSummary totals a list response.
type ListSummary struct {
	Count  int `json:"count"  yaml:"count"`
	Amount int `json:"amount" yaml:"amount"`
}

// Payments

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

// Payment statuses.
const (
	PaymentStatusCreated       PaymentStatus = "CREATED"
	PaymentStatusWaiting       PaymentStatus = "WAITING"
	PaymentStatusInAnalysis    PaymentStatus = "IN_ANALYSIS"
	PaymentStatusPreAuthorized PaymentStatus = "PRE_AUTHORIZED"
	PaymentStatusAuthorized    PaymentStatus = "AUTHORIZED"
	PaymentStatusCancelled     PaymentStatus = "CANCELLED"
	PaymentStatusRefunded      PaymentStatus = "REFUNDED"
	PaymentStatusReversed      PaymentStatus = "REVERSED"
	PaymentStatusSettled       PaymentStatus = "SETTLED"
)

// FundingMethod identifies how a payment is funded.
type FundingMethod string

// Funding methods.
const (
	FundingMethodCreditCard      FundingMethod = "CREDIT_CARD"
	FundingMethodBoleto          FundingMethod = "BOLETO"
	FundingMethodOnlineBankDebit FundingMethod = "ONLINE_BANK_DEBIT"
	FundingMethodMposCreditCard  FundingMethod = "MPOS_CREDIT_CARD"
	FundingMethodMposDebitCard   FundingMethod = "MPOS_DEBIT_CARD"
)

// Holder is the owner of a credit card.
type Holder struct {
	Fullname       string       `json:"fullname,omitempty"       yaml:"fullname,omitempty"`
	Birthdate      *Date        `json:"birthdate,omitempty"      yaml:"birthdate,omitempty"`
	TaxDocument    *TaxDocument `json:"taxDocument,omitempty"    yaml:"taxDocument,omitempty"`
	Phone          *Phone       `json:"phone,omitempty"          yaml:"phone,omitempty"`
	BillingAddress *Address     `json:"billingAddress,omitempty" yaml:"billingAddress,omitempty"`
}

// CreditCard is a credit card as returned by the API.
type CreditCard struct {
	ID     string  `json:"id,omitempty"     yaml:"id,omitempty"`
	Brand  string  `json:"brand,omitempty"  yaml:"brand,omitempty"`
	First6 string  `json:"first6,omitempty" yaml:"first6,omitempty"`
	Last4  string  `json:"last4,omitempty"  yaml:"last4,omitempty"`
	Store  bool    `json:"store,omitempty"  yaml:"store,omitempty"`
	Holder *Holder `json:"holder,omitempty" yaml:"holder,omitempty"`
}

// InstructionLines are printed on a boleto.
type InstructionLines struct {
	First  string `json:"first,omitempty"  yaml:"first,omitempty"`
	Second string `json:"second,omitempty" yaml:"second,omitempty"`
	Third  string `json:"third,omitempty"  yaml:"third,omitempty"`
}

// Boleto is a Brazilian bank slip.
type Boleto struct {
	ExpirationDate   *Date             `json:"expirationDate,omitempty"   yaml:"expirationDate,omitempty"`
	LineCode         string            `json:"lineCode,omitempty"         yaml:"lineCode,omitempty"`
	LogoURI          string            `json:"logoUri,omitempty"          yaml:"logoUri,omitempty"`
	InstructionLines *InstructionLines `json:"instructionLines,omitempty" yaml:"instructionLines,omitempty"`
}

// OnlineBankDebit is a redirect-based bank transfer.
type OnlineBankDebit struct {
	BankNumber     string `json:"bankNumber,omitempty"     yaml:"bankNumber,omitempty"`
	BankName       string `json:"bankName,omitempty"       yaml:"bankName,omitempty"`
	ExpirationDate *Date  `json:"expirationDate,omitempty" yaml:"expirationDate,omitempty"`
	ReturnURI      string `json:"returnUri,omitempty"      yaml:"returnUri,omitempty"`
}

// Mpos is a card-present point-of-sale device.
type Mpos struct {
	PinpadID string `json:"PinpadId,omitempty" yaml:"PinpadId,omitempty"`
}

// FundingInstrument describes how a payment is funded.
type FundingInstrument struct {
	Method          FundingMethod    `json:"method,omitempty"          yaml:"method,omitempty"`
	CreditCard      *CreditCard      `json:"creditCard,omitempty"      yaml:"creditCard,omitempty"`
	Boleto          *Boleto          `json:"boleto,omitempty"          yaml:"boleto,omitempty"`
	OnlineBankDebit *OnlineBankDebit `json:"onlineBankDebit,omitempty" yaml:"onlineBankDebit,omitempty"`
	Mpos            *Mpos            `json:"mpos,omitempty"            yaml:"mpos,omitempty"`
}

// Geolocation is where a card-present payment took place.
type Geolocation struct {
	Latitude  float64 `json:"latitude"  yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Fee is a fee charged on a payment.
type Fee struct {
	Type   string `json:"type"   yaml:"type"`
	Amount int    `json:"amount" yaml:"amount"`
}

// Payment represents the payment resource.
type Payment struct {
	ID                  string             `json:"id"                            yaml:"id"`
	Status              PaymentStatus      `json:"status,omitempty"              yaml:"status,omitempty"`
	DelayCapture        bool               `json:"delayCapture,omitempty"        yaml:"delayCapture,omitempty"`
	Amount              *Amount            `json:"amount,omitempty"              yaml:"amount,omitempty"`
	InstallmentCount    int                `json:"installmentCount,omitempty"    yaml:"installmentCount,omitempty"`
	StatementDescriptor string             `json:"statementDescriptor,omitempty" yaml:"statementDescriptor,omitempty"`
	FundingInstrument   *FundingInstrument `json:"fundingInstrument,omitempty"   yaml:"fundingInstrument,omitempty"`
	Geolocation         *Geolocation       `json:"geolocation,omitempty"         yaml:"geolocation,omitempty"`
	Fees                []Fee              `json:"fees,omitempty"                yaml:"fees,omitempty"`
	Events              []Event            `json:"events,omitempty"              yaml:"events,omitempty"`
	Escrows             []Escrow           `json:"escrows,omitempty"             yaml:"escrows,omitempty"`
	Refunds             []Refund           `json:"refunds,omitempty"             yaml:"refunds,omitempty"`
	CreatedAt           *Timestamp         `json:"createdAt,omitempty"           yaml:"createdAt,omitempty"`
	UpdatedAt           *Timestamp         `json:"updatedAt,omitempty"           yaml:"updatedAt,omitempty"`
	Links               Links              `json:"_links,omitempty"              yaml:"_links,omitempty"`
}

// EscrowID returns the id of the first escrow held on the payment.
func (p *Payment) EscrowID() string {
	if len(p.Escrows) == 0 {
		return ""
	}

	return p.Escrows[0].ID
}

// CreditCardRequest carries card data, a card hash or a stored card id.
type CreditCardRequest struct {
	ID              string  `json:"id,omitempty"              yaml:"id,omitempty"`
	Hash            string  `json:"hash,omitempty"            yaml:"hash,omitempty"`
	Number          string  `json:"number,omitempty"          yaml:"number,omitempty"`
	CVC             *int    `json:"cvc,omitempty"             yaml:"cvc,omitempty"`
	ExpirationMonth string  `json:"expirationMonth,omitempty" yaml:"expirationMonth,omitempty"`
	ExpirationYear  string  `json:"expirationYear,omitempty"  yaml:"expirationYear,omitempty"`
	Store           *bool   `json:"store,omitempty"           yaml:"store,omitempty"`
	Holder          *Holder `json:"holder,omitempty"          yaml:"holder,omitempty"`
}

// FundingInstrumentRequest is the funding section of a payment request.
type FundingInstrumentRequest struct {
	Method          FundingMethod      `json:"method,omitempty"          yaml:"method,omitempty"`
	CreditCard      *CreditCardRequest `json:"creditCard,omitempty"      yaml:"creditCard,omitempty"`
	Boleto          *Boleto            `json:"boleto,omitempty"          yaml:"boleto,omitempty"`
	OnlineBankDebit *OnlineBankDebit   `json:"onlineBankDebit,omitempty" yaml:"onlineBankDebit,omitempty"`
	Mpos            *Mpos              `json:"mpos,omitempty"            yaml:"mpos,omitempty"`
}

// CreditCardFunding funds a payment with a credit card.
func CreditCardFunding(card *CreditCardRequest) *FundingInstrumentRequest {
	return &FundingInstrumentRequest{Method: FundingMethodCreditCard, CreditCard: card}
}

// BoletoFunding funds a payment with a boleto.
func BoletoFunding(boleto *Boleto) *FundingInstrumentRequest {
	return &FundingInstrumentRequest{Method: FundingMethodBoleto, Boleto: boleto}
}

// OnlineBankDebitFunding funds a payment with an online bank debit.
func OnlineBankDebitFunding(debit *OnlineBankDebit) *FundingInstrumentRequest {
	return &FundingInstrumentRequest{Method: FundingMethodOnlineBankDebit, OnlineBankDebit: debit}
}

// MposCreditCardFunding funds a card-present credit payment.
func MposCreditCardFunding(pinpadID string) *FundingInstrumentRequest {
	return &FundingInstrumentRequest{Method: FundingMethodMposCreditCard, Mpos: &Mpos{PinpadID: pinpadID}}
}

// MposDebitCardFunding funds a card-present debit payment.
func MposDebitCardFunding(pinpadID string) *FundingInstrumentRequest {
	return &FundingInstrumentRequest{Method: FundingMethodMposDebitCard, Mpos: &Mpos{PinpadID: pinpadID}}
}

// EscrowRequest holds the payment amount in custody.
type EscrowRequest struct {
	Description string `json:"description" yaml:"description"`
}

// PaymentRequest is the body used to create a payment for an order.
type PaymentRequest struct {
	InstallmentCount    int                       `json:"installmentCount,omitempty"    yaml:"installmentCount,omitempty"`
	StatementDescriptor string                    `json:"statementDescriptor,omitempty" yaml:"statementDescriptor,omitempty"`
	DelayCapture        *bool                     `json:"delayCapture,omitempty"        yaml:"delayCapture,omitempty"`
	FundingInstrument   *FundingInstrumentRequest `json:"fundingInstrument,omitempty"   yaml:"fundingInstrument,omitempty"`
	Escrow              *EscrowRequest            `json:"escrow,omitempty"              yaml:"escrow,omitempty"`
	Geolocation         *Geolocation              `json:"geolocation,omitempty"         yaml:"geolocation,omitempty"`
}

// Customers

// Customer represents the customer resource.
type Customer struct {
	ID                 string              `json:"id,omitempty"                 yaml:"id,omitempty"`
	OwnID              string              `json:"ownId,omitempty"              yaml:"ownId,omitempty"`
	Fullname           string              `json:"fullname,omitempty"           yaml:"fullname,omitempty"`
	Email              string              `json:"email,omitempty"              yaml:"email,omitempty"`
	BirthDate          *Date               `json:"birthDate,omitempty"          yaml:"birthDate,omitempty"`
	TaxDocument        *TaxDocument        `json:"taxDocument,omitempty"        yaml:"taxDocument,omitempty"`
	Phone              *Phone              `json:"phone,omitempty"              yaml:"phone,omitempty"`
	ShippingAddress    *Address            `json:"shippingAddress,omitempty"    yaml:"shippingAddress,omitempty"`
	FundingInstrument  *FundingInstrument  `json:"fundingInstrument,omitempty"  yaml:"fundingInstrument,omitempty"`
	FundingInstruments []FundingInstrument `json:"fundingInstruments,omitempty" yaml:"fundingInstruments,omitempty"`
	CreatedAt          *Timestamp          `json:"createdAt,omitempty"          yaml:"createdAt,omitempty"`
	Links              Links               `json:"_links,omitempty"             yaml:"_links,omitempty"`
}

// CustomerRequest is the body used to create a customer, standalone or inside an order.
type CustomerRequest struct {
	ID                string                    `json:"id,omitempty"                yaml:"id,omitempty"`
	OwnID             string                    `json:"ownId,omitempty"             yaml:"ownId,omitempty"`
	Fullname          string                    `json:"fullname,omitempty"          yaml:"fullname,omitempty"`
	Email             string                    `json:"email,omitempty"             yaml:"email,omitempty"`
	BirthDate         *Date                     `json:"birthDate,omitempty"         yaml:"birthDate,omitempty"`
	TaxDocument       *TaxDocument              `json:"taxDocument,omitempty"       yaml:"taxDocument,omitempty"`
	Phone             *Phone                    `json:"phone,omitempty"             yaml:"phone,omitempty"`
	ShippingAddress   *Address                  `json:"shippingAddress,omitempty"   yaml:"shippingAddress,omitempty"`
	FundingInstrument *FundingInstrumentRequest `json:"fundingInstrument,omitempty" yaml:"fundingInstrument,omitempty"`
}

// Refunds

// RefundStatus is the state of a refund.
type RefundStatus string

// Refund statuses.
const (
	RefundStatusRequested RefundStatus = "REQUESTED"
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusFailed    RefundStatus = "FAILED"
)

// BankAccount receives refunds of boleto payments.
type BankAccount struct {
	Type               string  `json:"type,omitempty"               yaml:"type,omitempty"`
	BankNumber         string  `json:"bankNumber,omitempty"         yaml:"bankNumber,omitempty"`
	AgencyNumber       string  `json:"agencyNumber,omitempty"       yaml:"agencyNumber,omitempty"`
	AgencyCheckNumber  string  `json:"agencyCheckNumber,omitempty"  yaml:"agencyCheckNumber,omitempty"`
	AccountNumber      string  `json:"accountNumber,omitempty"      yaml:"accountNumber,omitempty"`
	AccountCheckNumber string  `json:"accountCheckNumber,omitempty" yaml:"accountCheckNumber,omitempty"`
	Holder             *Holder `json:"holder,omitempty"             yaml:"holder,omitempty"`
}

// RefundingInstrument is where refunded money goes.
type RefundingInstrument struct {
	Method      string       `json:"method,omitempty"      yaml:"method,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty" yaml:"bankAccount,omitempty"`
}

// Refund represents the refund resource.
type Refund struct {
	ID                  string               `json:"id"                            yaml:"id"`
	Status              RefundStatus         `json:"status,omitempty"              yaml:"status,omitempty"`
	Type                string               `json:"type,omitempty"                yaml:"type,omitempty"`
	Method              string               `json:"method,omitempty"              yaml:"method,omitempty"`
	Amount              *Amount              `json:"amount,omitempty"              yaml:"amount,omitempty"`
	RefundingInstrument *RefundingInstrument `json:"refundingInstrument,omitempty" yaml:"refundingInstrument,omitempty"`
	Events              []Event              `json:"events,omitempty"              yaml:"events,omitempty"`
	CreatedAt           *Timestamp           `json:"createdAt,omitempty"           yaml:"createdAt,omitempty"`
	Links               Links                `json:"_links,omitempty"              yaml:"_links,omitempty"`
}

// RefundRequest is the body of a refund. A nil Amount refunds the full value.
type RefundRequest struct {
	Amount              *int                 `json:"amount,omitempty"              yaml:"amount,omitempty"`
	RefundingInstrument *RefundingInstrument `json:"refundingInstrument,omitempty" yaml:"refundingInstrument,omitempty"`
}

// RefundList is the list of refunds of a payment or order.
type RefundList struct {
	Refunds []Refund `json:"refunds" yaml:"refunds"`
}

// Escrows

// EscrowStatus is the state of an escrow.
type EscrowStatus string

// Escrow statuses.
const (
	EscrowStatusHoldPending EscrowStatus = "HOLD_PENDING"
	EscrowStatusHold        EscrowStatus = "HOLD"
	EscrowStatusReleased    EscrowStatus = "RELEASED"
)

// Escrow is an amount held in custody.
type Escrow struct {
	ID          string       `json:"id"                    yaml:"id"`
	Status      EscrowStatus `json:"status,omitempty"      yaml:"status,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      int          `json:"amount,omitempty"      yaml:"amount,omitempty"`
	CreatedAt   *Timestamp   `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   *Timestamp   `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
	Links       Links        `json:"_links,omitempty"      yaml:"_links,omitempty"`
}

// Notifications

// NotificationPreference registers a target for event notifications.
type NotificationPreference struct {
	ID     string   `json:"id,omitempty"    yaml:"id,omitempty"`
	Events []string `json:"events"          yaml:"events"`
	Target string   `json:"target"          yaml:"target"`
	Media  string   `json:"media,omitempty" yaml:"media,omitempty"`
	Token  string   `json:"token,omitempty" yaml:"token,omitempty"`
}

// NotificationPreferenceRequest is the body used to create a preference.
type NotificationPreferenceRequest struct {
	Events []string `json:"events" yaml:"events"`
	Target string   `json:"target" yaml:"target"`
	Media  string   `json:"media"  yaml:"media"`
}

// Webhook is a notification delivery attempt.
type Webhook struct {
	ID         string     `json:"id"                   yaml:"id"`
	ResourceID string     `json:"resourceId,omitempty" yaml:"resourceId,omitempty"`
	Event      string     `json:"event,omitempty"      yaml:"event,omitempty"`
	URL        string     `json:"url,omitempty"        yaml:"url,omitempty"`
	Status     string     `json:"status,omitempty"     yaml:"status,omitempty"`
	SentAt     *Timestamp `json:"sentAt,omitempty"     yaml:"sentAt,omitempty"`
}

// WebhookList is a page of webhooks.
type WebhookList struct {
	Webhooks []Webhook `json:"webhooks" yaml:"webhooks"`
}

// WebhookListParams filter the webhook list.
type WebhookListParams struct {
	ResourceID string
	Event      string
	Limit      int
	Offset     int
}

// Accounts

// Person is the individual behind an account.
type Person struct {
	Name        string       `json:"name,omitempty"        yaml:"name,omitempty"`
	LastName    string       `json:"lastName,omitempty"    yaml:"lastName,omitempty"`
	BirthDate   *Date        `json:"birthDate,omitempty"   yaml:"birthDate,omitempty"`
	TaxDocument *TaxDocument `json:"taxDocument,omitempty" yaml:"taxDocument,omitempty"`
	Phone       *Phone       `json:"phone,omitempty"       yaml:"phone,omitempty"`
	Address     *Address     `json:"address,omitempty"     yaml:"address,omitempty"`
}

// Email is an account e-mail.
type Email struct {
	Address   string `json:"address"             yaml:"address"`
	Confirmed bool   `json:"confirmed,omitempty" yaml:"confirmed,omitempty"`
}

// Account represents a Moip account.
type Account struct {
	ID                 string     `json:"id,omitempty"                 yaml:"id,omitempty"`
	Login              string     `json:"login,omitempty"              yaml:"login,omitempty"`
	Type               string     `json:"type,omitempty"               yaml:"type,omitempty"`
	TransparentAccount bool       `json:"transparentAccount,omitempty" yaml:"transparentAccount,omitempty"`
	Email              *Email     `json:"email,omitempty"              yaml:"email,omitempty"`
	Person             *Person    `json:"person,omitempty"             yaml:"person,omitempty"`
	CreatedAt          *Timestamp `json:"createdAt,omitempty"          yaml:"createdAt,omitempty"`
	Links              Links      `json:"_links,omitempty"             yaml:"_links,omitempty"`
}

// AccountRequest is the body used to create an account.
type AccountRequest struct {
	Email              *Email  `json:"email"                        yaml:"email"`
	Person             *Person `json:"person"                       yaml:"person"`
	Type               string  `json:"type"                         yaml:"type"`
	TransparentAccount *bool   `json:"transparentAccount,omitempty" yaml:"transparentAccount,omitempty"`
}

// Connect

// AccessToken is issued by the Connect OAuth endpoint.
type AccessToken struct {
	AccessToken  string          `json:"access_token"            yaml:"access_token"`
	RefreshToken string          `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	ExpiresIn    string          `json:"expires_in,omitempty"    yaml:"expires_in,omitempty"`
	Scope        string          `json:"scope,omitempty"         yaml:"scope,omitempty"`
	MoipAccount  *MoipAccountRef `json:"moipAccount,omitempty"   yaml:"moipAccount,omitempty"`
}

// TokenRequest exchanges an authorization code for an access token.
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri"`
	GrantType    string `json:"grant_type"`
	Code         string `json:"code"`
}

// RefreshRequest renews an access token.
type RefreshRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
}

// Token converts the Connect token for use with an oauth2.TokenSource.
// ExpiresIn is a calendar date; an unparseable value leaves the expiry unset.
func (t *AccessToken) Token() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    "OAuth",
		RefreshToken: t.RefreshToken,
	}

	expiry, err := time.Parse(dateLayout, t.ExpiresIn)
	if err == nil {
		token.Expiry = expiry
	}

	return token
}
