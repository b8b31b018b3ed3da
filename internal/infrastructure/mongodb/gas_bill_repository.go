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

const gasBillsCollection = "gas-bills"

var _ repository.GasBillRepository = (*GasBillRepo)(nil)

// GasBillRepo adaptador de GasBillRepository sobre la colección "gas-bills".
type GasBillRepo struct {
	col *mongo.Collection
}

// NewGasBillRepository construye el adaptador.
func NewGasBillRepository(db *mongo.Database) *GasBillRepo {
	return &GasBillRepo{col: db.Collection(gasBillsCollection)}
}

type gasBillDoc struct {
	ID        string      `bson:"_id"`
	IDMember  string      `bson:"idMember"`
	Time      string      `bson:"time"`
	M3        float64     `bson:"m3"`
	URLPhoto  string      `bson:"urlPhoto,omitempty"`
	CreatedAt interface{} `bson:"createdAt"`
	UpdatedAt interface{} `bson:"updatedAt"`
}

func (d gasBillDoc) toEntity() *entity.GasBill {
	return &entity.GasBill{
		ID:        d.ID,
		IDMember:  d.IDMember,
		Time:      d.Time,
		M3:        d.M3,
		URLPhoto:  d.URLPhoto,
		CreatedAt: decodeDate(d.CreatedAt),
		UpdatedAt: decodeDate(d.UpdatedAt),
	}
}

func gasBillToDoc(b *entity.GasBill) gasBillDoc {
	return gasBillDoc{
		ID:        b.ID,
		IDMember:  b.IDMember,
		Time:      b.Time,
		M3:        b.M3,
		URLPhoto:  b.URLPhoto,
		CreatedAt: encodeDate(b.CreatedAt),
		UpdatedAt: encodeDate(b.UpdatedAt),
	}
}

// Save persiste una factura nueva.
func (r *GasBillRepo) Save(ctx context.Context, bill *entity.GasBill) (*entity.GasBill, error) {
	if _, err := r.col.InsertOne(ctx, gasBillToDoc(bill)); err != nil {
		return nil, fmt.Errorf("insertar factura: %w", err)
	}
	return bill, nil
}

// FindByID obtiene una factura por ID; (nil, nil) si no existe.
func (r *GasBillRepo) FindByID(ctx context.Context, id string) (*entity.GasBill, error) {
	var doc gasBillDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar factura: %w", err)
	}
	return doc.toEntity(), nil
}

// FindAll lista todas las facturas.
func (r *GasBillRepo) FindAll(ctx context.Context) ([]*entity.GasBill, error) {
	return r.findMany(ctx, bson.M{})
}

// FindByTimeAndMember obtiene la factura de un miembro para un periodo
// exacto; (nil, nil) si no hay.
func (r *GasBillRepo) FindByTimeAndMember(ctx context.Context, billTime, idMember string) (*entity.GasBill, error) {
	var doc gasBillDoc
	err := r.col.FindOne(ctx, bson.M{"time": billTime, "idMember": idMember}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar factura por periodo y miembro: %w", err)
	}
	return doc.toEntity(), nil
}

// FindInIDsMembers busca las facturas de los miembros dados. El almacén no
// admite "in" con más de maxInSize elementos, así que la lista se trocea y
// los resultados se unen sin garantía de orden entre bloques.
func (r *GasBillRepo) FindInIDsMembers(ctx context.Context, idMembers []string) ([]*entity.GasBill, error) {
	var results []*entity.GasBill
	for _, chunk := range chunkIDs(idMembers) {
		batch, err := r.findMany(ctx, bson.M{"idMember": bson.M{"$in": chunk}})
		if err != nil {
			return nil, err
		}
		results = append(results, batch...)
	}
	return results, nil
}

func (r *GasBillRepo) findMany(ctx context.Context, filter bson.M) ([]*entity.GasBill, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.GasBill
	for cursor.Next(ctx) {
		var doc gasBillDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar factura: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cursor.Err()
}

// Update aplica un $set con los campos presentes del parche y avanza updatedAt.
func (r *GasBillRepo) Update(ctx context.Context, id string, patch repository.GasBillPatch) (*entity.GasBill, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}

	set := bson.M{"updatedAt": encodeDate(time.Now())}
	if patch.IDMember != nil {
		set["idMember"] = *patch.IDMember
	}
	if patch.Time != nil {
		set["time"] = *patch.Time
	}
	if patch.M3 != nil {
		set["m3"] = *patch.M3
	}
	if patch.URLPhoto != nil {
		set["urlPhoto"] = *patch.URLPhoto
	}

	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	return updated, nil
}

// Delete elimina una factura por ID.
func (r *GasBillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar factura: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	return nil
}
