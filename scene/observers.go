package scene

import "github.com/lixenwraith/crystal-galaxy/event"

// FocusObserver receives camera choreography milestones, typically the
// UI layer hiding and showing hints
type FocusObserver interface {
	OnFocusStart(trackID string)
	OnFocusComplete(trackID string)
	OnReturnStart()
	OnReturnComplete()
}

// DegradeObserver receives the forced-performance-mode notification
type DegradeObserver interface {
	OnPerformanceDegraded()
}

// Notifier fans consumed queue events out to registered observers. The
// frame loop feeds it at frame start, after applying input
type Notifier struct {
	focus   []FocusObserver
	degrade []DegradeObserver
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) AddFocus(o FocusObserver)     { n.focus = append(n.focus, o) }
func (n *Notifier) AddDegrade(o DegradeObserver) { n.degrade = append(n.degrade, o) }

// Dispatch routes one event to the observers interested in it. Events
// without observers pass through silently
func (n *Notifier) Dispatch(ev event.Event) {
	switch ev.Type {
	case event.TypeFocusStart:
		for _, o := range n.focus {
			o.OnFocusStart(bodyID(ev))
		}
	case event.TypeFocusComplete:
		for _, o := range n.focus {
			o.OnFocusComplete(bodyID(ev))
		}
	case event.TypeReturnStart:
		for _, o := range n.focus {
			o.OnReturnStart()
		}
	case event.TypeReturnComplete:
		for _, o := range n.focus {
			o.OnReturnComplete()
		}
	case event.TypePerformanceDegraded:
		for _, o := range n.degrade {
			o.OnPerformanceDegraded()
		}
	}
}

func bodyID(ev event.Event) string {
	if p, ok := ev.Payload.(*event.BodyPayload); ok {
		return p.TrackID
	}
	return ""
}
