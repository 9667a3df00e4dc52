package contract

import (
	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Channel() ChannelRepo
}

// ChannelRepo defines the contract for the channel subscription repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	SetActive(slackChannelID string, active bool) error
	GetActiveChannels() ([]*entity.Channel, error)
}
