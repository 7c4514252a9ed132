package templates

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewTemplateMongoRepository(db *mongo.Client, dbName string) contracts.TemplateRepository {
	return &TemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTemplates),
	}
}

// templateDocument mirrors models.Template with a mongo ObjectID primary key.
type templateDocument struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty"`
	Name             string                 `bson:"name"`
	Description      string                 `bson:"description"`
	Category         string                 `bson:"category"`
	IsPublished      bool                   `bson:"isPublished"`
	CreatedBy        string                 `bson:"createdBy"`
	Sections         []models.Section       `bson:"sections"`
	ConditionalLogic []models.ConditionRule `bson:"conditionalLogic"`
	ScoringRules     *models.ScoringRules   `bson:"scoringRules,omitempty"`
	CreatedAt        time.Time              `bson:"createdAt"`
	UpdatedAt        time.Time              `bson:"updatedAt"`
}

func (doc *templateDocument) toModel() *models.Template {
	tpl := &models.Template{
		ID:               doc.ID.Hex(),
		Name:             doc.Name,
		Description:      doc.Description,
		Category:         doc.Category,
		IsPublished:      doc.IsPublished,
		CreatedBy:        doc.CreatedBy,
		Sections:         doc.Sections,
		ConditionalLogic: doc.ConditionalLogic,
		ScoringRules:     doc.ScoringRules,
	}
	tpl.CreatedAt = doc.CreatedAt
	tpl.UpdatedAt = doc.UpdatedAt
	return tpl
}

func (repo *TemplateMongoRepository) CreateTemplate(ctx context.Context, template *models.Template) (string, error) {
	now := time.Now()
	doc := templateDocument{
		Name:             template.Name,
		Description:      template.Description,
		Category:         template.Category,
		IsPublished:      template.IsPublished,
		CreatedBy:        template.CreatedBy,
		Sections:         template.Sections,
		ConditionalLogic: template.ConditionalLogic,
		ScoringRules:     template.ScoringRules,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TemplateMongoRepository) UpdateTemplate(ctx context.Context, template *models.Template) error {
	objectID, err := primitive.ObjectIDFromHex(template.ID)
	if err != nil {
		return exceptions.ErrMongoDBInvalidObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":             template.Name,
		"description":      template.Description,
		"category":         template.Category,
		"isPublished":      template.IsPublished,
		"sections":         template.Sections,
		"conditionalLogic": template.ConditionalLogic,
		"scoringRules":     template.ScoringRules,
		"updatedAt":        time.Now(),
	}}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrTemplateNotFound(nil)
	}
	return nil
}

func (repo *TemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*models.Template, error) {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return nil, exceptions.ErrMongoDBInvalidObjectID(err)
	}

	var doc templateDocument
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (repo *TemplateMongoRepository) FindAll(ctx context.Context, category string, published *bool) ([]models.Template, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if published != nil {
		filter["isPublished"] = *published
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	templates := make([]models.Template, 0)
	for cursor.Next(ctx) {
		var doc templateDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		templates = append(templates, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return templates, nil
}

func (repo *TemplateMongoRepository) DeleteByID(ctx context.Context, templateID string) error {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return exceptions.ErrMongoDBInvalidObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrTemplateNotFound(nil)
	}
	return nil
}
