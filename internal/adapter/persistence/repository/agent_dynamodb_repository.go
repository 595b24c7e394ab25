package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAgentsTableName = "agents"

type agentItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Description  string   `dynamodbav:"description"`
	Type         string   `dynamodbav:"type"`
	Platform     string   `dynamodbav:"platform"`
	Capabilities []string `dynamodbav:"capabilities"`
	Status       string   `dynamodbav:"status"`
	CreatedAt    string   `dynamodbav:"createdAt"`
	UpdatedAt    string   `dynamodbav:"updatedAt"`
}

// AgentDynamoRepository persists Agent registry entries in DynamoDB.
// The table is small, so lookups by name go through a filtered scan
// rather than a dedicated index.

type AgentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgentRepository = (*AgentDynamoRepository)(nil)

func NewAgentDynamoRepository(ddb *dynamodb.Client) *AgentDynamoRepository {
	return &AgentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGENTS_TABLE", defaultAgentsTableName),
	}
}

func (r *AgentDynamoRepository) Create(ctx context.Context, a entities.Agent) (entities.Agent, error) {
	av, err := attributevalue.MarshalMap(toAgentItem(a))
	if err != nil {
		return entities.Agent{}, err
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
		return entities.Agent{}, err
	}
	return a, nil
}

func (r *AgentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agent{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agent{}, nil
	}

	var it agentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agent{}, err
	}
	return fromAgentItem(it), nil
}

// GetByName matches case-insensitively and returns the zero value when no
// agent carries the name.
func (r *AgentDynamoRepository) GetByName(ctx context.Context, name string) (entities.Agent, error) {
	agents, err := r.List(ctx)
	if err != nil {
		return entities.Agent{}, err
	}
	for _, a := range agents {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return entities.Agent{}, nil
}

// List returns all agents ordered by lowercase name.
func (r *AgentDynamoRepository) List(ctx context.Context) ([]entities.Agent, error) {
	raw, err := listByEngagement(ctx, r.ddb, r.tableName, "", "")
	if err != nil {
		return nil, err
	}

	agents := make([]entities.Agent, 0, len(raw))
	for _, item := range raw {
		var it agentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		agents = append(agents, fromAgentItem(it))
	}

	sort.SliceStable(agents, func(i, j int) bool {
		return strings.ToLower(agents[i].Name) < strings.ToLower(agents[j].Name)
	})
	return agents, nil
}

func (r *AgentDynamoRepository) Update(ctx context.Context, id string, patch entities.AgentPatch) (entities.Agent, error) {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.Platform != nil {
		fields["platform"] = *patch.Platform
	}
	if patch.Capabilities != nil {
		fields["capabilities"] = *patch.Capabilities
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}

	expr, values, names, err := buildSetExpression(fields, formatTime(nowUTC()))
	if err != nil {
		return entities.Agent{}, err
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
			return entities.Agent{}, nil
		}
		return entities.Agent{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Agent{}, nil
	}

	var it agentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Agent{}, err
	}
	return fromAgentItem(it), nil
}

func (r *AgentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAgentItem(a entities.Agent) agentItem {
	capabilities := a.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}
	return agentItem{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Type:         a.Type,
		Platform:     a.Platform,
		Capabilities: capabilities,
		Status:       string(a.Status),
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

func fromAgentItem(it agentItem) entities.Agent {
	capabilities := it.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}
	return entities.Agent{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Type:         it.Type,
		Platform:     it.Platform,
		Capabilities: capabilities,
		Status:       entities.AgentStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
