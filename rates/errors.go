package rates

import "errors"

// ErrEvictedHistory indicates GetValuesAtTime was asked for a time
// earlier than the oldest snapshot still retained — a precondition
// violation per spec.md §7: callers must query monotonically in time.
var ErrEvictedHistory = errors.New("rates: requested time precedes the oldest retained snapshot")
