package repository

import (
	"context"
	"log"
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime reads a stored RFC3339 timestamp. A corrupted attribute maps to
// the zero time; the value is logged so it does not vanish silently.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		log.Printf("[repository] unparseable timestamp %q: %v", s, err)
		return time.Time{}
	}
	return t
}

// buildSetExpression turns a field -> value map into a deterministic
// "SET ..." update expression with its attribute names and values. It always
// stamps updatedAt.
func buildSetExpression(fields map[string]interface{}, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	fields["updatedAt"] = now

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expr := "SET "
	values := make(map[string]types.AttributeValue, len(fields))
	names := make(map[string]string, len(fields))
	for i, k := range keys {
		if i > 0 {
			expr += ", "
		}
		expr += "#" + k + " = :" + k
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, err
		}
		values[":"+k] = av
		names["#"+k] = k
	}
	return expr, values, names, nil
}

// listByEngagement collects every raw item, either from a full table scan
// (no filter) or from the engagement-index GSI, following pagination.
func listByEngagement(ctx context.Context, ddb *dynamodb.Client, tableName, indexName, engagementID string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		var page []map[string]types.AttributeValue
		var lastKey map[string]types.AttributeValue

		if engagementID == "" {
			out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
				TableName:         aws.String(tableName),
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			page, lastKey = out.Items, out.LastEvaluatedKey
		} else {
			out, err := ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(tableName),
				IndexName:              aws.String(indexName),
				KeyConditionExpression: aws.String("#engagementId = :engagementId"),
				ExpressionAttributeNames: map[string]string{
					"#engagementId": "engagementId",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":engagementId": &types.AttributeValueMemberS{Value: engagementID},
				},
				ExclusiveStartKey: startKey,
			})
			if err != nil {
				return nil, err
			}
			page, lastKey = out.Items, out.LastEvaluatedKey
		}

		items = append(items, page...)
		if len(lastKey) == 0 {
			return items, nil
		}
		startKey = lastKey
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
