package port

import "github.com/bnema/lrucache/internal/domain/entity"

//go:generate mockery --name=ConfigSchemaProvider --with-expecter --output=mocks --outpkg=mocks --structname=MockConfigSchemaProvider

// ConfigSchemaProvider lists the configuration keys with their metadata.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
