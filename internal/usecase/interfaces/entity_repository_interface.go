package interfaces

import "context"

// IEntityRepository persists the entities managed through forms.
//
// model and entity are pointers to gorm models (e.g. *entities.Project).
// Update and Delete report the number of affected rows; zero means the id
// does not exist.
type IEntityRepository interface {
	Create(ctx context.Context, entity any) error
	Update(ctx context.Context, model any, id string, changes map[string]any) (int64, error)
	Delete(ctx context.Context, model any, id string) (int64, error)
	Get(ctx context.Context, dest any, id string) (bool, error)
}
