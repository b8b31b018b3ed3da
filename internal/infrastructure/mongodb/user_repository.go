package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
)

const usersCollection = "users"

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador de UserRepository sobre la colección "users".
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(usersCollection)}
}

type userDoc struct {
	ID                   string      `bson:"_id"`
	IDAssociatedAccounts []string    `bson:"idAssociatedAccounts"`
	Email                string      `bson:"email"`
	Password             string      `bson:"password"`
	Rol                  string      `bson:"rol"`
	Active               bool        `bson:"active"`
	CreatedAt            interface{} `bson:"createdAt"`
	UpdatedAt            interface{} `bson:"updatedAt"`
}

func (d userDoc) toEntity() *entity.User {
	accounts := d.IDAssociatedAccounts
	if accounts == nil {
		accounts = []string{}
	}
	return &entity.User{
		ID:                   d.ID,
		IDAssociatedAccounts: accounts,
		Email:                d.Email,
		Password:             d.Password,
		Rol:                  d.Rol,
		Active:               d.Active,
		CreatedAt:            decodeDate(d.CreatedAt),
		UpdatedAt:            decodeDate(d.UpdatedAt),
	}
}

func userToDoc(u *entity.User) userDoc {
	return userDoc{
		ID:                   u.ID,
		IDAssociatedAccounts: u.IDAssociatedAccounts,
		Email:                u.Email,
		Password:             u.Password,
		Rol:                  u.Rol,
		Active:               u.Active,
		CreatedAt:            encodeDate(u.CreatedAt),
		UpdatedAt:            encodeDate(u.UpdatedAt),
	}
}

// Save persiste un usuario nuevo.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, err := r.col.InsertOne(ctx, userToDoc(user)); err != nil {
		return nil, fmt.Errorf("insertar usuario: %w", err)
	}
	return user, nil
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail obtiene un usuario por email exacto (sensible a mayúsculas).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return doc.toEntity(), nil
}

// FindAll lista todos los usuarios.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar usuario: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cursor.Err()
}

// Update aplica un $set con los campos presentes del parche y avanza updatedAt.
func (r *UserRepo) Update(ctx context.Context, id string, patch repository.UserPatch) (*entity.User, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}

	set := bson.M{"updatedAt": encodeDate(time.Now())}
	if patch.IDAssociatedAccounts != nil {
		set["idAssociatedAccounts"] = *patch.IDAssociatedAccounts
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}
	if patch.Rol != nil {
		set["rol"] = *patch.Rol
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}

	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("actualizar usuario: %w", err)
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return updated, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return nil
}
