package contract

import (
	"context"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// SheetSource delivers the raw rows of the activity tracking worksheet.
// Every call re-reads the full sheet; there is no caching layer.
type SheetSource interface {
	FetchRecords(ctx context.Context) ([]entity.RawRecord, error)
}
