package ports

// Locker serializes cache rebuilds across independent process invocations.
// Lock blocks until the exclusive lock at path is held and returns the
// release function. Implementations must release the lock when the holding
// process dies; where the platform cannot guarantee that, a no-op
// implementation is injected instead and concurrent rebuilds become a
// tolerated last-writer-wins race.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	Lock(path string) (release func(), err error)
}
