package ports

// TaskDispatcher hands an order over to asynchronous lifecycle processing.
//
// Dispatch must not block the submitting request and must not be awaited:
// the caller only learns that the task was accepted. The engine dispatches
// exactly one task per submitted order.
type TaskDispatcher interface {
	// Dispatch schedules asynchronous processing for the order id.
	// Returns an error only if the task could not be accepted at all.
	Dispatch(orderID int64) error
}
