package domain

// Watch is the live-mode state for one guest/bot conversation.
type Watch struct {
	GuestID   GuestID
	BotID     BotID
	LastCount int
	Active    bool
}

func NewWatch(guestID GuestID, botID BotID, initialCount int) Watch {
	if initialCount < 0 {
		initialCount = 0
	}

	return Watch{GuestID: guestID, BotID: botID, LastCount: initialCount, Active: true}
}

// Observe folds a fetched message count into the watch. It reports true when the count grew,
// which is the only case that raises LastCount and warrants a notification.
func (w Watch) Observe(count int) (Watch, bool) {
	if count <= w.LastCount {
		return w, false
	}

	w.LastCount = count
	return w, true
}
