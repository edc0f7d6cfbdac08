package entity

type Player struct {
	Mark string `json:"mark"`
	AI   bool   `json:"ai"`
}

func NewPlayer(mark string, ai bool) *Player {
	return &Player{Mark: mark, AI: ai}
}

func (that *Player) IsBot() bool {
	return that.AI
}
