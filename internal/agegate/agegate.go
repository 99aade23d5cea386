package agegate

import "go.uber.org/zap"

const StorageKey = "greencross_isOfAge"

type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Gate records that the visitor confirmed they are 21 or older.
type Gate struct {
	storage Storage
	logger  *zap.Logger
}

func New(storage Storage, logger *zap.Logger) *Gate {
	return &Gate{storage: storage, logger: logger}
}

// IsVerified is false whenever the stored value cannot be read.
func (g *Gate) IsVerified() bool {
	v, err := g.storage.Get(StorageKey)
	if err != nil {
		g.logger.Debug("reading age confirmation", zap.Error(err))
		return false
	}
	return v == "true"
}

func (g *Gate) Confirm() {
	if err := g.storage.Set(StorageKey, "true"); err != nil {
		g.logger.Debug("saving age confirmation", zap.Error(err))
	}
}
