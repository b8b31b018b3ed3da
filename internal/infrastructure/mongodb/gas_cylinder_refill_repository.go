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

const refillsCollection = "gas-cylinder-refills"

var _ repository.GasCylinderRefillRepository = (*GasCylinderRefillRepo)(nil)

// GasCylinderRefillRepo adaptador sobre la colección "gas-cylinder-refills".
type GasCylinderRefillRepo struct {
	col *mongo.Collection
}

// NewGasCylinderRefillRepository construye el adaptador.
func NewGasCylinderRefillRepository(db *mongo.Database) *GasCylinderRefillRepo {
	return &GasCylinderRefillRepo{col: db.Collection(refillsCollection)}
}

type refillDoc struct {
	ID                string      `bson:"_id"`
	IDGasCylinder     string      `bson:"idGasCylinder"`
	FillingPercentage float64     `bson:"fillingPercentage"`
	FillingTime       string      `bson:"fillingTime"`
	URLVoucher        string      `bson:"urlVoucher,omitempty"`
	CreatedAt         interface{} `bson:"createdAt"`
	UpdatedAt         interface{} `bson:"updatedAt"`
}

func (d refillDoc) toEntity() *entity.GasCylinderRefill {
	return &entity.GasCylinderRefill{
		ID:                d.ID,
		IDGasCylinder:     d.IDGasCylinder,
		FillingPercentage: d.FillingPercentage,
		FillingTime:       d.FillingTime,
		URLVoucher:        d.URLVoucher,
		CreatedAt:         decodeDate(d.CreatedAt),
		UpdatedAt:         decodeDate(d.UpdatedAt),
	}
}

func refillToDoc(rf *entity.GasCylinderRefill) refillDoc {
	return refillDoc{
		ID:                rf.ID,
		IDGasCylinder:     rf.IDGasCylinder,
		FillingPercentage: rf.FillingPercentage,
		FillingTime:       rf.FillingTime,
		URLVoucher:        rf.URLVoucher,
		CreatedAt:         encodeDate(rf.CreatedAt),
		UpdatedAt:         encodeDate(rf.UpdatedAt),
	}
}

// Create persiste una recarga nueva.
func (r *GasCylinderRefillRepo) Create(ctx context.Context, refill *entity.GasCylinderRefill) (*entity.GasCylinderRefill, error) {
	if _, err := r.col.InsertOne(ctx, refillToDoc(refill)); err != nil {
		return nil, fmt.Errorf("insertar recarga: %w", err)
	}
	return refill, nil
}

// FindByID obtiene una recarga por ID; (nil, nil) si no existe.
func (r *GasCylinderRefillRepo) FindByID(ctx context.Context, id string) (*entity.GasCylinderRefill, error) {
	var doc refillDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar recarga: %w", err)
	}
	return doc.toEntity(), nil
}

// FindAll lista todas las recargas.
func (r *GasCylinderRefillRepo) FindAll(ctx context.Context) ([]*entity.GasCylinderRefill, error) {
	return r.findMany(ctx, bson.M{})
}

// FindAllByCylinderID lista las recargas de un cilindro.
func (r *GasCylinderRefillRepo) FindAllByCylinderID(ctx context.Context, cylinderID string) ([]*entity.GasCylinderRefill, error) {
	return r.findMany(ctx, bson.M{"idGasCylinder": cylinderID})
}

func (r *GasCylinderRefillRepo) findMany(ctx context.Context, filter bson.M) ([]*entity.GasCylinderRefill, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar recargas: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.GasCylinderRefill
	for cursor.Next(ctx) {
		var doc refillDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar recarga: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cursor.Err()
}

// Update aplica un $set con los campos presentes del parche y avanza updatedAt.
func (r *GasCylinderRefillRepo) Update(ctx context.Context, id string, patch repository.GasCylinderRefillPatch) (*entity.GasCylinderRefill, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}

	set := bson.M{"updatedAt": encodeDate(time.Now())}
	if patch.FillingPercentage != nil {
		set["fillingPercentage"] = *patch.FillingPercentage
	}
	if patch.FillingTime != nil {
		set["fillingTime"] = *patch.FillingTime
	}
	if patch.URLVoucher != nil {
		set["urlVoucher"] = *patch.URLVoucher
	}

	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("actualizar recarga: %w", err)
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	return updated, nil
}

// Delete elimina una recarga por ID.
func (r *GasCylinderRefillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar recarga: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	return nil
}
