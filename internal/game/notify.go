package game

// Notifier receives fire-and-forget notifications about session events.
// Implementations must not block; failures never affect the simulation.
type Notifier interface {
	SessionStart()
	Collect()
	HazardHit()
	SessionEnd()
}

// NopNotifier ignores all notifications.
type NopNotifier struct{}

func (NopNotifier) SessionStart() {}
func (NopNotifier) Collect()      {}
func (NopNotifier) HazardHit()    {}
func (NopNotifier) SessionEnd()   {}
