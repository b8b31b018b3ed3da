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

const clientsCollection = "clients"

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo adaptador de ClientRepository sobre la colección "clients".
type ClientRepo struct {
	col *mongo.Collection
}

// NewClientRepository construye el adaptador.
func NewClientRepository(db *mongo.Database) *ClientRepo {
	return &ClientRepo{col: db.Collection(clientsCollection)}
}

type agentDoc struct {
	Name          string `bson:"name"`
	ContactNumber string `bson:"contactNumber,omitempty"`
}

type cylinderDoc struct {
	ID      string  `bson:"id"`
	GlMax   float64 `bson:"glMax"`
	GlToLts float64 `bson:"glToLts"`
}

// clientDoc forma del documento. Las fechas se declaran interface{} porque
// el almacén puede contener strings ISO o timestamps nativos según la ruta
// de escritura que los produjo.
type clientDoc struct {
	ID           string        `bson:"_id"`
	Name         string        `bson:"name"`
	Agent        agentDoc      `bson:"agent"`
	Active       bool          `bson:"active"`
	Phone        string        `bson:"phone"`
	Type         string        `bson:"type"`
	Membership   string        `bson:"membership"`
	GasCylinders []cylinderDoc `bson:"gasCylinders"`
	CreatedAt    interface{}   `bson:"createdAt"`
	UpdatedAt    interface{}   `bson:"updatedAt"`
}

func (d clientDoc) toEntity() *entity.Client {
	cylinders := make([]entity.GasCylinder, 0, len(d.GasCylinders))
	for _, c := range d.GasCylinders {
		cylinders = append(cylinders, entity.GasCylinder(c))
	}
	return &entity.Client{
		ID:           d.ID,
		Name:         d.Name,
		Agent:        entity.Agent(d.Agent),
		Active:       d.Active,
		Phone:        d.Phone,
		Type:         d.Type,
		Membership:   d.Membership,
		GasCylinders: cylinders,
		CreatedAt:    decodeDate(d.CreatedAt),
		UpdatedAt:    decodeDate(d.UpdatedAt),
	}
}

func clientToDoc(c *entity.Client) clientDoc {
	cylinders := make([]cylinderDoc, 0, len(c.GasCylinders))
	for _, cyl := range c.GasCylinders {
		cylinders = append(cylinders, cylinderDoc(cyl))
	}
	return clientDoc{
		ID:           c.ID,
		Name:         c.Name,
		Agent:        agentDoc(c.Agent),
		Active:       c.Active,
		Phone:        c.Phone,
		Type:         c.Type,
		Membership:   c.Membership,
		GasCylinders: cylinders,
		CreatedAt:    encodeDate(c.CreatedAt),
		UpdatedAt:    encodeDate(c.UpdatedAt),
	}
}

// Save persiste un cliente nuevo con el ID de la entidad como clave.
func (r *ClientRepo) Save(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	if _, err := r.col.InsertOne(ctx, clientToDoc(client)); err != nil {
		return nil, fmt.Errorf("insertar cliente: %w", err)
	}
	return client, nil
}

// FindByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *ClientRepo) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	var doc clientDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	return doc.toEntity(), nil
}

// FindAll lista todos los clientes.
func (r *ClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Client
	for cursor.Next(ctx) {
		var doc clientDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar cliente: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cursor.Err()
}

// Update aplica un $set solo con los campos presentes del parche y siempre
// avanza updatedAt. Devuelve el cliente ya actualizado.
func (r *ClientRepo) Update(ctx context.Context, id string, patch repository.ClientPatch) (*entity.Client, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}

	set := bson.M{"updatedAt": encodeDate(time.Now())}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Agent != nil {
		set["agent"] = agentDoc(*patch.Agent)
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Membership != nil {
		set["membership"] = *patch.Membership
	}
	if patch.GasCylinders != nil {
		cylinders := make([]cylinderDoc, 0, len(*patch.GasCylinders))
		for _, cyl := range *patch.GasCylinders {
			cylinders = append(cylinders, cylinderDoc(cyl))
		}
		set["gasCylinders"] = cylinders
	}

	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	return updated, nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	return nil
}
