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
	defaultTasksTableName = "tasks"
	taskEngagementIndex   = "engagement-index"
)

type taskItem struct {
	ID             string `dynamodbav:"id"`
	EngagementID   string `dynamodbav:"engagementId"`
	EngagementName string `dynamodbav:"engagementName"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description"`
	Status         string `dynamodbav:"status"`
	Priority       string `dynamodbav:"priority"`
	Assignee       string `dynamodbav:"assignee"`
	DueDate        string `dynamodbav:"dueDate"`
	CompletedAt    string `dynamodbav:"completedAt"`
	CreatedAt      string `dynamodbav:"createdAt"`
	UpdatedAt      string `dynamodbav:"updatedAt"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.

type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

// List returns tasks ordered by priority rank, then creation time.
func (r *TaskDynamoRepository) List(ctx context.Context, engagementID string) ([]entities.Task, error) {
	raw, err := listByEngagement(ctx, r.ddb, r.tableName, taskEngagementIndex, engagementID)
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, 0, len(raw))
	for _, item := range raw {
		var it taskItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		tasks = append(tasks, fromTaskItem(it))
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].Priority.Rank(), tasks[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskDynamoRepository) Update(ctx context.Context, id string, patch entities.TaskPatch) (entities.Task, error) {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		fields["priority"] = string(*patch.Priority)
	}
	if patch.Assignee != nil {
		fields["assignee"] = *patch.Assignee
	}
	if patch.DueDate != nil {
		fields["dueDate"] = *patch.DueDate
	}
	if patch.CompletedAt != nil {
		fields["completedAt"] = *patch.CompletedAt
	}

	expr, values, names, err := buildSetExpression(fields, formatTime(nowUTC()))
	if err != nil {
		return entities.Task{}, err
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
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:             t.ID,
		EngagementID:   t.EngagementID,
		EngagementName: t.EngagementName,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Assignee:       t.Assignee,
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:             it.ID,
		EngagementID:   it.EngagementID,
		EngagementName: it.EngagementName,
		Title:          it.Title,
		Description:    it.Description,
		Status:         entities.TaskStatus(it.Status),
		Priority:       entities.TaskPriority(it.Priority),
		Assignee:       it.Assignee,
		DueDate:        it.DueDate,
		CompletedAt:    it.CompletedAt,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
