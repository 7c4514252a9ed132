package auth

import (
	"context"
	"time"

	"audit-service/internal/app/contracts"
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (doc *userDocument) toModel() *models.User {
	user := &models.User{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		Email:    doc.Email,
		Username: doc.Username,
		Password: doc.Password,
		Role:     doc.Role,
	}
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt
	return user
}

func (repo *UserMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	doc := userDocument{
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		Password:  user.Password,
		Role:      user.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	return objectID.Hex(), nil
}

func (repo *UserMongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return repo.findOne(ctx, bson.M{"username": username})
}

func (repo *UserMongoRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"email": email},
		{"username": username},
	}}
	return repo.findOne(ctx, filter)
}

func (repo *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	err := repo.Collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}
