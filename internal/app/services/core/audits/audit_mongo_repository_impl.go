package audits

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

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Client, dbName string) contracts.AuditRepository {
	return &AuditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAudits),
	}
}

type auditDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	TemplateID    string               `bson:"templateId"`
	AssignedTo    string               `bson:"assignedTo"`
	Location      models.AuditLocation `bson:"location"`
	Status        models.AuditStatus   `bson:"status"`
	Responses     models.ResponseSet   `bson:"responses"`
	Score         *float64             `bson:"score,omitempty"`
	SectionScores map[string]float64   `bson:"sectionScores,omitempty"`
	SubmittedAt   *time.Time           `bson:"submittedAt,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt"`
}

func (doc *auditDocument) toModel() *models.Audit {
	audit := &models.Audit{
		ID:            doc.ID.Hex(),
		TemplateID:    doc.TemplateID,
		AssignedTo:    doc.AssignedTo,
		Location:      doc.Location,
		Status:        doc.Status,
		Responses:     doc.Responses,
		Score:         doc.Score,
		SectionScores: doc.SectionScores,
		SubmittedAt:   doc.SubmittedAt,
	}
	audit.CreatedAt = doc.CreatedAt
	audit.UpdatedAt = doc.UpdatedAt
	return audit
}

func (repo *AuditMongoRepository) CreateAudit(ctx context.Context, audit *models.Audit) (string, error) {
	now := time.Now()
	doc := auditDocument{
		TemplateID: audit.TemplateID,
		AssignedTo: audit.AssignedTo,
		Location:   audit.Location,
		Status:     audit.Status,
		Responses:  audit.Responses,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AuditMongoRepository) UpdateAudit(ctx context.Context, audit *models.Audit) error {
	objectID, err := primitive.ObjectIDFromHex(audit.ID)
	if err != nil {
		return exceptions.ErrMongoDBInvalidObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"location":      audit.Location,
		"status":        audit.Status,
		"responses":     audit.Responses,
		"score":         audit.Score,
		"sectionScores": audit.SectionScores,
		"submittedAt":   audit.SubmittedAt,
		"updatedAt":     time.Now(),
	}}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAuditNotFound(nil)
	}
	return nil
}

func (repo *AuditMongoRepository) FindByID(ctx context.Context, auditID string) (*models.Audit, error) {
	objectID, err := primitive.ObjectIDFromHex(auditID)
	if err != nil {
		return nil, exceptions.ErrMongoDBInvalidObjectID(err)
	}

	var doc auditDocument
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (repo *AuditMongoRepository) FindAll(ctx context.Context, status, assignedTo string) ([]models.Audit, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if assignedTo != "" {
		filter["assignedTo"] = assignedTo
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	audits := make([]models.Audit, 0)
	for cursor.Next(ctx) {
		var doc auditDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		audits = append(audits, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return audits, nil
}

func (repo *AuditMongoRepository) DeleteByID(ctx context.Context, auditID string) error {
	objectID, err := primitive.ObjectIDFromHex(auditID)
	if err != nil {
		return exceptions.ErrMongoDBInvalidObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAuditNotFound(nil)
	}
	return nil
}
