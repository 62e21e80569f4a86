package domain

type BotID string

type Bot struct {
	ID   BotID
	Name string
}

type BotCounts struct {
	Messages        int64
	Guests          int64
	ManualResponses int64
}

func FindBot(bots []Bot, id BotID) (Bot, bool) {
	for _, bot := range bots {
		if bot.ID == id {
			return bot, true
		}
	}

	return Bot{}, false
}
