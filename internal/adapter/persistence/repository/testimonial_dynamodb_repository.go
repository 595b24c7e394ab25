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
	defaultTestimonialsTableName = "testimonials"
	testimonialEngagementIndex   = "engagement-index"
)

type testimonialItem struct {
	ID                string `dynamodbav:"id"`
	EngagementID      string `dynamodbav:"engagementId"`
	EngagementName    string `dynamodbav:"engagementName"`
	SubmitterName     string `dynamodbav:"submitterName"`
	SubmitterEmail    string `dynamodbav:"submitterEmail"`
	SubmitterRole     string `dynamodbav:"submitterRole"`
	SubmitterTeam     string `dynamodbav:"submitterTeam"`
	Rating            *int   `dynamodbav:"rating,omitempty"`
	TestimonialText   string `dynamodbav:"testimonialText"`
	WhatWorkedWell    string `dynamodbav:"whatWorkedWell"`
	WhatCouldImprove  string `dynamodbav:"whatCouldImprove"`
	WouldRecommend    *bool  `dynamodbav:"wouldRecommend,omitempty"`
	Source            string `dynamodbav:"source"`
	SolicitationToken string `dynamodbav:"solicitationToken,omitempty"`
	Approved          bool   `dynamodbav:"approved"`
	Featured          bool   `dynamodbav:"featured"`
	SubmittedAt       string `dynamodbav:"submittedAt"`
	UpdatedAt         string `dynamodbav:"updatedAt"`
}

// TestimonialDynamoRepository persists Testimonial entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (engagement-index): engagementId (string)
//
// CreateSolicited also touches the solicitations table in the same
// transaction, so this repository carries both table names.

type TestimonialDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	solicitationsTable string
}

var _ interfaces.ITestimonialRepository = (*TestimonialDynamoRepository)(nil)

func NewTestimonialDynamoRepository(ddb *dynamodb.Client) *TestimonialDynamoRepository {
	return &TestimonialDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("TESTIMONIALS_TABLE", defaultTestimonialsTableName),
		solicitationsTable: getenvDefault("SOLICITATIONS_TABLE", defaultSolicitationsTableName),
	}
}

func (r *TestimonialDynamoRepository) Create(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error) {
	av, err := attributevalue.MarshalMap(toTestimonialItem(t))
	if err != nil {
		return entities.Testimonial{}, err
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
		return entities.Testimonial{}, err
	}
	return t, nil
}

// CreateSolicited writes the testimonial and resolves its solicitation in
// one TransactWriteItems call: either both land or neither does. When the
// solicitation is no longer pending the transaction is cancelled and the
// zero value comes back, letting the caller report the lost race.
func (r *TestimonialDynamoRepository) CreateSolicited(ctx context.Context, t entities.Testimonial, token string, resolvedAt time.Time) (entities.Testimonial, error) {
	av, err := attributevalue.MarshalMap(toTestimonialItem(t))
	if err != nil {
		return entities.Testimonial{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.solicitationsTable),
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
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// The testimonial id is fresh, so a cancellation means the
			// solicitation condition failed.
			return entities.Testimonial{}, nil
		}
		return entities.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Testimonial, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Testimonial{}, err
	}
	if len(out.Item) == 0 {
		return entities.Testimonial{}, nil
	}

	var it testimonialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Testimonial{}, err
	}
	return fromTestimonialItem(it), nil
}

func (r *TestimonialDynamoRepository) List(ctx context.Context, engagementID string) ([]entities.Testimonial, error) {
	raw, err := listByEngagement(ctx, r.ddb, r.tableName, testimonialEngagementIndex, engagementID)
	if err != nil {
		return nil, err
	}

	testimonials := make([]entities.Testimonial, 0, len(raw))
	for _, item := range raw {
		var it testimonialItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, fromTestimonialItem(it))
	}

	sort.SliceStable(testimonials, func(i, j int) bool {
		return testimonials[i].SubmittedAt.After(testimonials[j].SubmittedAt)
	})
	return testimonials, nil
}

func (r *TestimonialDynamoRepository) Update(ctx context.Context, id string, patch entities.TestimonialPatch) (entities.Testimonial, error) {
	fields := map[string]interface{}{}
	if patch.Approved != nil {
		fields["approved"] = *patch.Approved
	}
	if patch.Featured != nil {
		fields["featured"] = *patch.Featured
	}
	if patch.TestimonialText != nil {
		fields["testimonialText"] = *patch.TestimonialText
	}
	if patch.Rating != nil {
		fields["rating"] = *patch.Rating
	}
	if patch.WhatWorkedWell != nil {
		fields["whatWorkedWell"] = *patch.WhatWorkedWell
	}
	if patch.WhatCouldImprove != nil {
		fields["whatCouldImprove"] = *patch.WhatCouldImprove
	}
	if patch.WouldRecommend != nil {
		fields["wouldRecommend"] = *patch.WouldRecommend
	}

	expr, values, names, err := buildSetExpression(fields, formatTime(nowUTC()))
	if err != nil {
		return entities.Testimonial{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Testimonial{}, nil
		}
		return entities.Testimonial{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Testimonial{}, nil
	}

	var it testimonialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Testimonial{}, err
	}
	return fromTestimonialItem(it), nil
}

func toTestimonialItem(t entities.Testimonial) testimonialItem {
	return testimonialItem{
		ID:                t.ID,
		EngagementID:      t.EngagementID,
		EngagementName:    t.EngagementName,
		SubmitterName:     t.SubmitterName,
		SubmitterEmail:    t.SubmitterEmail,
		SubmitterRole:     t.SubmitterRole,
		SubmitterTeam:     t.SubmitterTeam,
		Rating:            t.Rating,
		TestimonialText:   t.TestimonialText,
		WhatWorkedWell:    t.WhatWorkedWell,
		WhatCouldImprove:  t.WhatCouldImprove,
		WouldRecommend:    t.WouldRecommend,
		Source:            string(t.Source),
		SolicitationToken: t.SolicitationToken,
		Approved:          t.Approved,
		Featured:          t.Featured,
		SubmittedAt:       formatTime(t.SubmittedAt),
		UpdatedAt:         formatTime(t.UpdatedAt),
	}
}

func fromTestimonialItem(it testimonialItem) entities.Testimonial {
	return entities.Testimonial{
		ID:                it.ID,
		EngagementID:      it.EngagementID,
		EngagementName:    it.EngagementName,
		SubmitterName:     it.SubmitterName,
		SubmitterEmail:    it.SubmitterEmail,
		SubmitterRole:     it.SubmitterRole,
		SubmitterTeam:     it.SubmitterTeam,
		Rating:            it.Rating,
		TestimonialText:   it.TestimonialText,
		WhatWorkedWell:    it.WhatWorkedWell,
		WhatCouldImprove:  it.WhatCouldImprove,
		WouldRecommend:    it.WouldRecommend,
		Source:            entities.TestimonialSource(it.Source),
		SolicitationToken: it.SolicitationToken,
		Approved:          it.Approved,
		Featured:          it.Featured,
		SubmittedAt:       parseTime(it.SubmittedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
