package repository

import (
	"context"
	"errors"
	"sort"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEngagementsTableName = "engagements"
	engagementStatusIndex       = "status-index"
)

type engagementItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	Team           string   `dynamodbav:"team"`
	Description    string   `dynamodbav:"description"`
	Status         string   `dynamodbav:"status"`
	Owner          string   `dynamodbav:"owner"`
	Stakeholders   []string `dynamodbav:"stakeholders"`
	Tools          []string `dynamodbav:"tools"`
	Agents         []string `dynamodbav:"agents"`
	Objectives     string   `dynamodbav:"objectives"`
	ChatSpace      string   `dynamodbav:"chatSpace"`
	SuccessMetrics string   `dynamodbav:"successMetrics"`
	Blockers       string   `dynamodbav:"blockers"`
	NextSteps      string   `dynamodbav:"nextSteps"`
	Notes          string   `dynamodbav:"notes"`
	StartDate      string   `dynamodbav:"startDate"`
	TargetDate     string   `dynamodbav:"targetDate"`
	CompletedDate  string   `dynamodbav:"completedDate"`
	CreatedAt      string   `dynamodbav:"createdAt"`
	UpdatedAt      string   `dynamodbav:"updatedAt"`
}

// EngagementDynamoRepository persists Engagement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (status-index): status (string)

type EngagementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
	}
}

func (r *EngagementDynamoRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	av, err := attributevalue.MarshalMap(toEngagementItem(e))
	if err != nil {
		return entities.Engagement{}, err
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
		return entities.Engagement{}, err
	}
	return e, nil
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) List(ctx context.Context, status entities.EngagementStatus) ([]entities.Engagement, error) {
	var raw []map[string]types.AttributeValue
	var err error
	if status == "" {
		raw, err = r.scanAll(ctx)
	} else {
		raw, err = r.queryByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}

	engagements := make([]entities.Engagement, 0, len(raw))
	for _, item := range raw {
		var it engagementItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		engagements = append(engagements, fromEngagementItem(it))
	}

	sort.SliceStable(engagements, func(i, j int) bool {
		return engagements[i].UpdatedAt.After(engagements[j].UpdatedAt)
	})
	return engagements, nil
}

func (r *EngagementDynamoRepository) scanAll(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *EngagementDynamoRepository) queryByStatus(ctx context.Context, status entities.EngagementStatus) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(engagementStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *EngagementDynamoRepository) Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	fields := engagementPatchFields(patch)

	expr, values, names, err := buildSetExpression(fields, formatTime(nowUTC()))
	if err != nil {
		return entities.Engagement{}, err
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
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func engagementPatchFields(patch entities.EngagementPatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Team != nil {
		fields["team"] = *patch.Team
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	if patch.Owner != nil {
		fields["owner"] = *patch.Owner
	}
	if patch.Stakeholders != nil {
		fields["stakeholders"] = *patch.Stakeholders
	}
	if patch.Tools != nil {
		fields["tools"] = *patch.Tools
	}
	if patch.Agents != nil {
		fields["agents"] = *patch.Agents
	}
	if patch.Objectives != nil {
		fields["objectives"] = *patch.Objectives
	}
	if patch.ChatSpace != nil {
		fields["chatSpace"] = *patch.ChatSpace
	}
	if patch.SuccessMetrics != nil {
		fields["successMetrics"] = *patch.SuccessMetrics
	}
	if patch.Blockers != nil {
		fields["blockers"] = *patch.Blockers
	}
	if patch.NextSteps != nil {
		fields["nextSteps"] = *patch.NextSteps
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}
	if patch.StartDate != nil {
		fields["startDate"] = *patch.StartDate
	}
	if patch.TargetDate != nil {
		fields["targetDate"] = *patch.TargetDate
	}
	if patch.CompletedDate != nil {
		fields["completedDate"] = *patch.CompletedDate
	}
	return fields
}

func toEngagementItem(e entities.Engagement) engagementItem {
	return engagementItem{
		ID:             e.ID,
		Name:           e.Name,
		Team:           e.Team,
		Description:    e.Description,
		Status:         string(e.Status),
		Owner:          e.Owner,
		Stakeholders:   e.Stakeholders,
		Tools:          e.Tools,
		Agents:         e.Agents,
		Objectives:     e.Objectives,
		ChatSpace:      e.ChatSpace,
		SuccessMetrics: e.SuccessMetrics,
		Blockers:       e.Blockers,
		NextSteps:      e.NextSteps,
		Notes:          e.Notes,
		StartDate:      e.StartDate,
		TargetDate:     e.TargetDate,
		CompletedDate:  e.CompletedDate,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromEngagementItem(it engagementItem) entities.Engagement {
	return entities.Engagement{
		ID:             it.ID,
		Name:           it.Name,
		Team:           it.Team,
		Description:    it.Description,
		Status:         entities.EngagementStatus(it.Status),
		Owner:          it.Owner,
		Stakeholders:   it.Stakeholders,
		Tools:          it.Tools,
		Agents:         it.Agents,
		Objectives:     it.Objectives,
		ChatSpace:      it.ChatSpace,
		SuccessMetrics: it.SuccessMetrics,
		Blockers:       it.Blockers,
		NextSteps:      it.NextSteps,
		Notes:          it.Notes,
		StartDate:      it.StartDate,
		TargetDate:     it.TargetDate,
		CompletedDate:  it.CompletedDate,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
