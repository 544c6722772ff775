package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/domain/repository"
)

var (
	publicUserProjection = bson.D{{Key: "password", Value: 0}, {Key: "email", Value: 0}}
	ownUserProjection    = bson.D{{Key: "password", Value: 0}}
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	About    string             `bson:"about"`
	Avatar   string             `bson:"avatar"`
	Email    string             `bson:"email,omitempty"`
	Password string             `bson:"password,omitempty"`
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		About:    d.About,
		Avatar:   d.Avatar,
		Email:    d.Email,
		Password: d.Password,
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}

// translate maps driver errors onto repository sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicateEmail
	case isValidationError(err):
		return repository.ErrInvalidDocument
	default:
		return err
	}
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Name:     u.Name,
		About:    u.About,
		Avatar:   u.Avatar,
		Email:    u.Email,
		Password: u.Password,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translate(err)
	}
	u.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D, projection bson.D) (*entity.User, error) {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, publicUserProjection)
}

func (r *UserRepository) GetOwn(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, ownUserProjection)
}

func (r *UserRepository) GetCredentials(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}}, nil)
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetProjection(publicUserProjection))
	if err != nil {
		return nil, err
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toEntity())
	}
	return out, nil
}

func (r *UserRepository) set(ctx context.Context, id string, fields bson.D) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(ownUserProjection)
	var doc userDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}}, opts).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entity.User, error) {
	return r.set(ctx, id, bson.D{{Key: "name", Value: name}, {Key: "about", Value: about}})
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entity.User, error) {
	return r.set(ctx, id, bson.D{{Key: "avatar", Value: avatar}})
}

var _ repository.UserRepository = (*UserRepository)(nil)
