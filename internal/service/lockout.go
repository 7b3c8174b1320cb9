package service

// LockThreshold is the number of consecutive failed password checks after
// which an account stops accepting login attempts.
const LockThreshold = 5

// NextAttemptState computes the counter and lock flag to persist after one
// more failed login, given the counter before the failure. Pure function,
// no I/O.
func NextAttemptState(failedAttempts int) (newFailedAttempts int, locked bool) {
	newFailedAttempts = failedAttempts + 1
	return newFailedAttempts, newFailedAttempts >= LockThreshold
}
