package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
)

const authsCollection = "auths"

var _ repository.AuthRepository = (*AuthRepo)(nil)

// AuthRepo adaptador de AuthRepository sobre la colección "auths".
type AuthRepo struct {
	col *mongo.Collection
}

// NewAuthRepository construye el adaptador.
func NewAuthRepository(db *mongo.Database) *AuthRepo {
	return &AuthRepo{col: db.Collection(authsCollection)}
}

type authDoc struct {
	ID        string      `bson:"_id"`
	IDUser    string      `bson:"idUser"`
	Token     string      `bson:"token"`
	CreatedAt interface{} `bson:"createdAt"`
}

func (d authDoc) toEntity() *entity.Auth {
	return &entity.Auth{
		ID:        d.ID,
		IDUser:    d.IDUser,
		Token:     d.Token,
		CreatedAt: decodeDate(d.CreatedAt),
	}
}

func authToDoc(a *entity.Auth) authDoc {
	return authDoc{
		ID:        a.ID,
		IDUser:    a.IDUser,
		Token:     a.Token,
		CreatedAt: encodeDate(a.CreatedAt),
	}
}

// Save persiste una sesión nueva.
func (r *AuthRepo) Save(ctx context.Context, auth *entity.Auth) (*entity.Auth, error) {
	if _, err := r.col.InsertOne(ctx, authToDoc(auth)); err != nil {
		return nil, fmt.Errorf("insertar sesión: %w", err)
	}
	return auth, nil
}

// FindByID obtiene una sesión por ID; (nil, nil) si no existe.
func (r *AuthRepo) FindByID(ctx context.Context, id string) (*entity.Auth, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByToken obtiene la sesión con ese token exacto; (nil, nil) si no hay.
func (r *AuthRepo) FindByToken(ctx context.Context, token string) (*entity.Auth, error) {
	return r.findOne(ctx, bson.M{"token": token})
}

func (r *AuthRepo) findOne(ctx context.Context, filter bson.M) (*entity.Auth, error) {
	var doc authDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar sesión: %w", err)
	}
	return doc.toEntity(), nil
}

// Update reemplaza el documento completo de la sesión (refresh de token).
func (r *AuthRepo) Update(ctx context.Context, auth *entity.Auth) (*entity.Auth, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": auth.ID}, authToDoc(auth))
	if err != nil {
		return nil, fmt.Errorf("actualizar sesión: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthNotFound, auth.ID)
	}
	return auth, nil
}

// Delete elimina una sesión por ID.
func (r *AuthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAuthNotFound, id)
	}
	return nil
}
