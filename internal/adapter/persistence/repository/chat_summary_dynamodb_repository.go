package repository

import (
	"context"

	"pulse_tracker/internal/domain/entities"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChatSummariesTableName = "chat_summaries"

type chatSummaryItem struct {
	EngagementID  string   `dynamodbav:"engagementId"`
	Summary       string   `dynamodbav:"summary"`
	Topics        []string `dynamodbav:"topics"`
	Participants  []string `dynamodbav:"participants"`
	Sentiment     string   `dynamodbav:"sentiment"`
	KeyHighlights []string `dynamodbav:"keyHighlights"`
	ActionItems   []string `dynamodbav:"actionItems"`
	CachedAt      int64    `dynamodbav:"cachedAt"`
	MessageCount  int      `dynamodbav:"messageCount"`
}

// ChatSummaryDynamoRepository caches one summary per engagement. Entries
// are overwritten on refresh; staleness is decided by the use case.

type ChatSummaryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChatSummaryRepository = (*ChatSummaryDynamoRepository)(nil)

func NewChatSummaryDynamoRepository(ddb *dynamodb.Client) *ChatSummaryDynamoRepository {
	return &ChatSummaryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHAT_SUMMARIES_TABLE", defaultChatSummariesTableName),
	}
}

func (r *ChatSummaryDynamoRepository) Get(ctx context.Context, engagementID string) (entities.CachedChatSummary, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"engagementId": &types.AttributeValueMemberS{Value: engagementID},
		},
	})
	if err != nil {
		return entities.CachedChatSummary{}, err
	}
	if len(out.Item) == 0 {
		return entities.CachedChatSummary{}, nil
	}

	var it chatSummaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CachedChatSummary{}, err
	}
	return fromChatSummaryItem(it), nil
}

func (r *ChatSummaryDynamoRepository) Put(ctx context.Context, s entities.CachedChatSummary) error {
	av, err := attributevalue.MarshalMap(toChatSummaryItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toChatSummaryItem(s entities.CachedChatSummary) chatSummaryItem {
	return chatSummaryItem{
		EngagementID:  s.EngagementID,
		Summary:       s.Summary.Summary,
		Topics:        s.Summary.Topics,
		Participants:  s.Summary.Participants,
		Sentiment:     s.Summary.Sentiment,
		KeyHighlights: s.Summary.KeyHighlights,
		ActionItems:   s.Summary.ActionItems,
		CachedAt:      s.CachedAt,
		MessageCount:  s.MessageCount,
	}
}

func fromChatSummaryItem(it chatSummaryItem) entities.CachedChatSummary {
	return entities.CachedChatSummary{
		EngagementID: it.EngagementID,
		Summary: entities.ChatSummary{
			Summary:       it.Summary,
			Topics:        it.Topics,
			Participants:  it.Participants,
			Sentiment:     it.Sentiment,
			KeyHighlights: it.KeyHighlights,
			ActionItems:   it.ActionItems,
		},
		CachedAt:     it.CachedAt,
		MessageCount: it.MessageCount,
	}
}
