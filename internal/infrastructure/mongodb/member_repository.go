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

const membersCollection = "members"

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo adaptador de MemberRepository sobre la colección "members".
type MemberRepo struct {
	col *mongo.Collection
}

// NewMemberRepository construye el adaptador.
func NewMemberRepository(db *mongo.Database) *MemberRepo {
	return &MemberRepo{col: db.Collection(membersCollection)}
}

type memberDoc struct {
	ID          string      `bson:"_id"`
	IDClient    string      `bson:"idClient"`
	Name        string      `bson:"name"`
	Lastname    string      `bson:"lastname"`
	Email       string      `bson:"email"`
	Phone       string      `bson:"phone"`
	Address     string      `bson:"address"`
	MeterSerial string      `bson:"meterSerial"`
	Active      bool        `bson:"active"`
	CreatedAt   interface{} `bson:"createdAt"`
	UpdatedAt   interface{} `bson:"updatedAt"`
}

func (d memberDoc) toEntity() *entity.Member {
	return &entity.Member{
		ID:          d.ID,
		IDClient:    d.IDClient,
		Name:        d.Name,
		Lastname:    d.Lastname,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		MeterSerial: d.MeterSerial,
		Active:      d.Active,
		CreatedAt:   decodeDate(d.CreatedAt),
		UpdatedAt:   decodeDate(d.UpdatedAt),
	}
}

func memberToDoc(m *entity.Member) memberDoc {
	return memberDoc{
		ID:          m.ID,
		IDClient:    m.IDClient,
		Name:        m.Name,
		Lastname:    m.Lastname,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		MeterSerial: m.MeterSerial,
		Active:      m.Active,
		CreatedAt:   encodeDate(m.CreatedAt),
		UpdatedAt:   encodeDate(m.UpdatedAt),
	}
}

// Create persiste un miembro nuevo.
func (r *MemberRepo) Create(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	if _, err := r.col.InsertOne(ctx, memberToDoc(member)); err != nil {
		return nil, fmt.Errorf("insertar miembro: %w", err)
	}
	return member, nil
}

// FindByID obtiene un miembro por ID; (nil, nil) si no existe.
func (r *MemberRepo) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByMeterSerial obtiene el miembro con ese serial de medidor; (nil, nil) si no hay.
func (r *MemberRepo) FindByMeterSerial(ctx context.Context, meterSerial string) (*entity.Member, error) {
	return r.findOne(ctx, bson.M{"meterSerial": meterSerial})
}

func (r *MemberRepo) findOne(ctx context.Context, filter bson.M) (*entity.Member, error) {
	var doc memberDoc
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar miembro: %w", err)
	}
	return doc.toEntity(), nil
}

// FindAll lista todos los miembros.
func (r *MemberRepo) FindAll(ctx context.Context) ([]*entity.Member, error) {
	return r.findMany(ctx, bson.M{})
}

// FindAllByClientID lista los miembros de un cliente.
func (r *MemberRepo) FindAllByClientID(ctx context.Context, clientID string) ([]*entity.Member, error) {
	return r.findMany(ctx, bson.M{"idClient": clientID})
}

func (r *MemberRepo) findMany(ctx context.Context, filter bson.M) ([]*entity.Member, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar miembros: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Member
	for cursor.Next(ctx) {
		var doc memberDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar miembro: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cursor.Err()
}

// Update aplica un $set con los campos presentes del parche y avanza updatedAt.
func (r *MemberRepo) Update(ctx context.Context, id string, patch repository.MemberPatch) (*entity.Member, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}

	set := bson.M{"updatedAt": encodeDate(time.Now())}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Lastname != nil {
		set["lastname"] = *patch.Lastname
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.MeterSerial != nil {
		set["meterSerial"] = *patch.MeterSerial
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}

	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("actualizar miembro: %w", err)
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	return updated, nil
}

// Delete elimina un miembro por ID.
func (r *MemberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminar miembro: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	return nil
}
