package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSolicitationsTableName = "solicitations"
	solicitationEngagementIndex   = "engagement-index"
)

type solicitationItem struct {
	Token          string `dynamodbav:"token"`
	EngagementID   string `dynamodbav:"engagementId"`
	EngagementName string `dynamodbav:"engagementName"`
	RecipientName  string `dynamodbav:"recipientName"`
	RecipientEmail string `dynamodbav:"recipientEmail"`
	RecipientRole  string `dynamodbav:"recipientRole"`
	Message        string `dynamodbav:"message"`
	RequestedBy    string `dynamodbav:"requestedBy"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"createdAt"`
	ExpiresAt      string `dynamodbav:"expiresAt"`
	ExpiresAtTTL   int64  `dynamodbav:"expiresAtTTL"`
	ResolvedAt     string `dynamodbav:"resolvedAt,omitempty"`
}

// SolicitationDynamoRepository persists Solicitation entities in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - GSI1 (engagement-index): engagementId (string)
//   - TTL on expiresAtTTL so abandoned records age out of storage long
//     after they stopped being accepted.

type SolicitationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISolicitationRepository = (*SolicitationDynamoRepository)(nil)

func NewSolicitationDynamoRepository(ddb *dynamodb.Client) *SolicitationDynamoRepository {
	return &SolicitationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SOLICITATIONS_TABLE", defaultSolicitationsTableName),
	}
}

func (r *SolicitationDynamoRepository) Create(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error) {
	av, err := attributevalue.MarshalMap(toSolicitationItem(s))
	if err != nil {
		return entities.Solicitation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return entities.Solicitation{}, err
	}
	return s, nil
}

func (r *SolicitationDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Solicitation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Solicitation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Solicitation{}, nil
	}

	var it solicitationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Solicitation{}, err
	}
	return fromSolicitationItem(it), nil
}

func (r *SolicitationDynamoRepository) List(ctx context.Context, engagementID string) ([]entities.Solicitation, error) {
	raw, err := listByEngagement(ctx, r.ddb, r.tableName, solicitationEngagementIndex, engagementID)
	if err != nil {
		return nil, err
	}

	solicitations := make([]entities.Solicitation, 0, len(raw))
	for _, item := range raw {
		var it solicitationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		solicitations = append(solicitations, fromSolicitationItem(it))
	}

	sort.SliceStable(solicitations, func(i, j int) bool {
		return solicitations[i].CreatedAt.After(solicitations[j].CreatedAt)
	})
	return solicitations, nil
}

// Resolve flips pending -> completed. The conditional expression makes the
// flip single-use: when the stored status already moved on, the zero value
// comes back instead of a silently re-resolved record.
func (r *SolicitationDynamoRepository) Resolve(ctx context.Context, token string, resolvedAt time.Time) (entities.Solicitation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression: aws.String("attribute_exists(#token) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :completed, #resolvedAt = :resolvedAt"),
		ExpressionAttributeNames: map[string]string{
			"#token":      "token",
			"#status":     "status",
			"#resolvedAt": "resolvedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.SolicitationStatusPending)},
			":completed":  &types.AttributeValueMemberS{Value: string(entities.SolicitationStatusCompleted)},
			":resolvedAt": &types.AttributeValueMemberS{Value: formatTime(resolvedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Solicitation{}, nil
		}
		return entities.Solicitation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Solicitation{}, nil
	}

	var it solicitationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Solicitation{}, err
	}
	return fromSolicitationItem(it), nil
}

func toSolicitationItem(s entities.Solicitation) solicitationItem {
	it := solicitationItem{
		Token:          s.Token,
		EngagementID:   s.EngagementID,
		EngagementName: s.EngagementName,
		RecipientName:  s.RecipientName,
		RecipientEmail: s.RecipientEmail,
		RecipientRole:  s.RecipientRole,
		Message:        s.Message,
		RequestedBy:    s.RequestedBy,
		Status:         string(s.Status),
		CreatedAt:      formatTime(s.CreatedAt),
		ExpiresAt:      formatTime(s.ExpiresAt),
		ExpiresAtTTL:   s.ExpiresAt.Unix(),
	}
	if s.ResolvedAt != nil {
		it.ResolvedAt = formatTime(*s.ResolvedAt)
	}
	return it
}

func fromSolicitationItem(it solicitationItem) entities.Solicitation {
	s := entities.Solicitation{
		Token:          it.Token,
		EngagementID:   it.EngagementID,
		EngagementName: it.EngagementName,
		RecipientName:  it.RecipientName,
		RecipientEmail: it.RecipientEmail,
		RecipientRole:  it.RecipientRole,
		Message:        it.Message,
		RequestedBy:    it.RequestedBy,
		Status:         entities.SolicitationStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		ExpiresAt:      parseTime(it.ExpiresAt),
	}
	if it.ResolvedAt != "" {
		resolvedAt := parseTime(it.ResolvedAt)
		s.ResolvedAt = &resolvedAt
	}
	return s
}
