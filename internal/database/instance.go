package database

import (
	"github.com/agnikas07/HustleBot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	channelRepo contract.ChannelRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		channelRepo: newChannelRepo(db.conn),
	}
}

// Channel returns the channel repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}
