package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region OrderNotFoundError

type OrderNotFoundError struct {
	Msg string
}

func (e *OrderNotFoundError) Error() string {
	return e.Msg
}

func (e *OrderNotFoundError) Is(target error) bool {
	_, ok := target.(*OrderNotFoundError)
	return ok
}

//endregion

//region InvoiceNotFoundError

type InvoiceNotFoundError struct {
	Msg string
}

func (e *InvoiceNotFoundError) Error() string {
	return e.Msg
}

func (e *InvoiceNotFoundError) Is(target error) bool {
	_, ok := target.(*InvoiceNotFoundError)
	return ok
}

//endregion

//region ServerNotFoundError

type ServerNotFoundError struct {
	Msg string
}

func (e *ServerNotFoundError) Error() string {
	return e.Msg
}

func (e *ServerNotFoundError) Is(target error) bool {
	_, ok := target.(*ServerNotFoundError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region InsufficientStockError

// InsufficientStockError reports that the counted stock of a product
// cannot cover the requested quantity.
type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region InsufficientStockItemsError

// InsufficientStockItemsError reports that fewer unsold unique stock items
// exist (or could be claimed) than the requested quantity.
type InsufficientStockItemsError struct {
	Msg string
}

func (e *InsufficientStockItemsError) Error() string {
	return e.Msg
}

func (e *InsufficientStockItemsError) Is(target error) bool {
	_, ok := target.(*InsufficientStockItemsError)
	return ok
}

//endregion

//region DuplicateResourceError

type DuplicateResourceError struct {
	Msg string
}

func (e *DuplicateResourceError) Error() string {
	return e.Msg
}

func (e *DuplicateResourceError) Is(target error) bool {
	_, ok := target.(*DuplicateResourceError)
	return ok
}

//endregion

//region ResourceInUseError

// ResourceInUseError reports that a record cannot be removed because other
// records still reference it, e.g. a product with issued invoices.
type ResourceInUseError struct {
	Msg string
}

func (e *ResourceInUseError) Error() string {
	return e.Msg
}

func (e *ResourceInUseError) Is(target error) bool {
	_, ok := target.(*ResourceInUseError)
	return ok
}

//endregion

//region ExternalServiceError

// ExternalServiceError carries the vendor-provided detail of a failed
// provisioning or payment gateway call.
type ExternalServiceError struct {
	Msg string
}

func (e *ExternalServiceError) Error() string {
	return e.Msg
}

func (e *ExternalServiceError) Is(target error) bool {
	_, ok := target.(*ExternalServiceError)
	return ok
}

//endregion

//region ProvisionNotCompletedError

// ProvisionNotCompletedError reports that the account was debited but the
// vendor resource was never created. Refunded tells whether the
// compensating credit went through; when false the balance must be
// restored by an operator.
type ProvisionNotCompletedError struct {
	Msg      string
	Refunded bool
}

func (e *ProvisionNotCompletedError) Error() string {
	return e.Msg
}

func (e *ProvisionNotCompletedError) Is(target error) bool {
	_, ok := target.(*ProvisionNotCompletedError)
	return ok
}

//endregion

//region TransientStoreError

// TransientStoreError reports a store-side conflict or timeout. The whole
// operation may be retried by the caller if no side effect was committed.
type TransientStoreError struct {
	Msg string
}

func (e *TransientStoreError) Error() string {
	return e.Msg
}

func (e *TransientStoreError) Is(target error) bool {
	_, ok := target.(*TransientStoreError)
	return ok
}

//endregion
