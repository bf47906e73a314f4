package repository

import (
	"context"
	"encoding/json"
	"time"

	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSectionsTableName = "sections"

type sectionItem struct {
	Slug      string `dynamodbav:"slug"`
	ID        string `dynamodbav:"id"`
	Content   string `dynamodbav:"content"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SectionDynamoRepository persists content sections in DynamoDB.
//
// Table requirements:
//   - PK: slug (string)
//
// The section document is stored as a raw JSON string; the API never
// interprets it beyond validity checks in the use case.

type SectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISectionRepository = (*SectionDynamoRepository)(nil)

func NewSectionDynamoRepository(ddb *dynamodb.Client) *SectionDynamoRepository {
	return &SectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SECTIONS_TABLE", defaultSectionsTableName),
	}
}

func (r *SectionDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Section, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slug": &types.AttributeValueMemberS{Value: slug},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Section{}, err
	}
	if len(out.Item) == 0 {
		return entities.Section{}, nil
	}

	var it sectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Section{}, err
	}
	return fromSectionItem(it), nil
}

func (r *SectionDynamoRepository) Upsert(ctx context.Context, s entities.Section) (entities.Section, error) {
	av, err := attributevalue.MarshalMap(toSectionItem(s))
	if err != nil {
		return entities.Section{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Section{}, err
	}
	return s, nil
}

func toSectionItem(s entities.Section) sectionItem {
	return sectionItem{
		Slug:      s.Slug,
		ID:        s.ID,
		Content:   string(s.Content),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSectionItem(it sectionItem) entities.Section {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Section{
		ID:        it.ID,
		Slug:      it.Slug,
		Content:   json.RawMessage(it.Content),
		UpdatedAt: updatedAt,
	}
}
