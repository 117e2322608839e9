package sprites

// Kind 精灵类型
type Kind int

const (
	KindRunner Kind = iota
	KindBat
	KindBee
	KindButton
	KindCoin
	KindPlatform
	KindRuby
	KindSapphire
	KindSnail
	KindSnailBomb
)

var kindNames = [...]string{
	KindRunner:    "runner",
	KindBat:       "bat",
	KindBee:       "bee",
	KindButton:    "button",
	KindCoin:      "coin",
	KindPlatform:  "platform",
	KindRuby:      "ruby",
	KindSapphire:  "sapphire",
	KindSnail:     "snail",
	KindSnailBomb: "snail bomb",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsBadGuy 碰到会让跑者爆炸的类型
func (k Kind) IsBadGuy() bool {
	switch k {
	case KindBat, KindBee, KindSnail, KindSnailBomb:
		return true
	}
	return false
}

// IsCollectible 可收集的类型（金币和宝石）
func (k Kind) IsCollectible() bool {
	switch k {
	case KindCoin, KindRuby, KindSapphire:
		return true
	}
	return false
}

// Direction 水平朝向
type Direction int

const (
	DirectionUnset Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unset"
}
