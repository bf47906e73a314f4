package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDonationsTableName = "donations"
	donationsIntentIDIndex    = "provider_intent_id-index"
)

type donationItem struct {
	ID               string `dynamodbav:"id"`
	Amount           string `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	DonorName        string `dynamodbav:"donor_name"`
	DonorEmail       string `dynamodbav:"donor_email"`
	Purpose          string `dynamodbav:"purpose"`
	SectionID        string `dynamodbav:"section_id,omitempty"`
	ObjectID         string `dynamodbav:"object_id,omitempty"`
	Status           string `dynamodbav:"status"`
	ProviderIntentID string `dynamodbav:"provider_intent_id"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// DonationDynamoRepository persists Donation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_intent_id-index (PK: provider_intent_id), used by the
//     webhook handler to resolve provider events back to donations.

type DonationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDonationRepository = (*DonationDynamoRepository)(nil)

func NewDonationDynamoRepository(ddb *dynamodb.Client) *DonationDynamoRepository {
	return &DonationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATIONS_TABLE", defaultDonationsTableName),
	}
}

func (r *DonationDynamoRepository) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	it := toDonationItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Donation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return d, nil
}

func (r *DonationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func (r *DonationDynamoRepository) GetByProviderIntentID(ctx context.Context, intentID string) (entities.Donation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(donationsIntentIDIndex),
		KeyConditionExpression: aws.String("provider_intent_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: intentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func (r *DonationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Donation{}, nil
		}
		return entities.Donation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func toDonationItem(d entities.Donation) donationItem {
	return donationItem{
		ID:               d.ID,
		Amount:           floatToString(d.Amount),
		Currency:         d.Currency,
		DonorName:        d.DonorName,
		DonorEmail:       d.DonorEmail,
		Purpose:          d.Purpose,
		SectionID:        d.SectionID,
		ObjectID:         d.ObjectID,
		Status:           string(d.Status),
		ProviderIntentID: d.ProviderIntentID,
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDonationItem(it donationItem) entities.Donation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Donation{
		ID:               it.ID,
		Amount:           amount,
		Currency:         it.Currency,
		DonorName:        it.DonorName,
		DonorEmail:       it.DonorEmail,
		Purpose:          it.Purpose,
		SectionID:        it.SectionID,
		ObjectID:         it.ObjectID,
		Status:           entities.DonationStatus(it.Status),
		ProviderIntentID: it.ProviderIntentID,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
