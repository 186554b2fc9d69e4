// internal/platform/account.go
package platform

import "context"

const addressesQuery = `
query {
  addresses {
    addressId
    addressTypeId
    city
    country
    customerId
    isDefault
    postalCode
    state
    streetAddress
  }
}`

const registerAddressMutation = `
mutation RegisterAddress($input: RegisterAddress!) {
  registerAddress(input: $input) {
    addressId
    addressTypeId
    city
    country
    customerId
    isDefault
    postalCode
    state
    streetAddress
  }
}`

const updateAddressMutation = `
mutation UpdateAddress($addressId: Int!, $addressTypeId: Int!, $input: RegisterAddress!) {
  updateAddress(addressId: $addressId, addressTypeId: $addressTypeId, input: $input) {
    addressId
    addressTypeId
    city
    country
    customerId
    isDefault
    postalCode
    state
    streetAddress
  }
}`

const deleteAddressMutation = `
mutation DeleteAddress($addressId: Int!) {
  deleteAddress(addressId: $addressId)
}`

const sendEmailVerificationMutation = `
mutation SendEmailVerification {
  sendEmailVerification
}`

const paymentMethodsQuery = `
query {
  paymentMethods {
    paymentMethodId
    customerId
    paymentType
    isDefault
    bankName
    accountHolderName
    cardNumber
    cardExpirationDate
    iban
    upiId
    bankAccountNumber
    ifscCode
    cardTypeId
  }
}`

// Addresses lists the authenticated customer's saved addresses
func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var out struct {
		Addresses []Address `json:"addresses"`
	}
	if err := c.do(ctx, addressesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

// RegisterAddress saves a new address for the authenticated customer
func (c *Client) RegisterAddress(ctx context.Context, input AddressInput) (*Address, error) {
	var out struct {
		RegisterAddress Address `json:"registerAddress"`
	}
	err := c.do(ctx, registerAddressMutation, map[string]interface{}{"input": input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterAddress, nil
}

// UpdateAddress replaces an existing address
func (c *Client) UpdateAddress(ctx context.Context, addressID, addressTypeID int, input AddressInput) (*Address, error) {
	var out struct {
		UpdateAddress Address `json:"updateAddress"`
	}
	err := c.do(ctx, updateAddressMutation, map[string]interface{}{
		"addressId":     addressID,
		"addressTypeId": addressTypeID,
		"input":         input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UpdateAddress, nil
}

// DeleteAddress removes a saved address
func (c *Client) DeleteAddress(ctx context.Context, addressID int) error {
	return c.do(ctx, deleteAddressMutation, map[string]interface{}{"addressId": addressID}, nil)
}

// SendEmailVerification asks the platform to mail a verification link to the
// authenticated user
func (c *Client) SendEmailVerification(ctx context.Context) error {
	return c.do(ctx, sendEmailVerificationMutation, nil, nil)
}

// PaymentMethods lists the authenticated customer's saved payment methods
func (c *Client) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var out struct {
		PaymentMethods []PaymentMethod `json:"paymentMethods"`
	}
	if err := c.do(ctx, paymentMethodsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.PaymentMethods, nil
}
