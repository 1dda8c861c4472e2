package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReconciliationTableName = "pending_reconciliations"

type reconciliationItem struct {
	ID         string   `dynamodbav:"id"`
	Kind       string   `dynamodbav:"kind"`
	EntityID   string   `dynamodbav:"entity_id"`
	RelatedIDs []string `dynamodbav:"related_ids,stringset,omitempty"`
	Reason     string   `dynamodbav:"reason"`
	Status     string   `dynamodbav:"status"`
	CreatedAt  string   `dynamodbav:"created_at"`
	ResolvedAt string   `dynamodbav:"resolved_at,omitempty"`
}

// ReconciliationDynamoRepository keeps pending reconciliation markers in
// DynamoDB, outside the relational store whose partial writes they describe.
//
// Table requirements:
//   - PK: id (string)
type ReconciliationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReconciliationRepository = (*ReconciliationDynamoRepository)(nil)

func NewReconciliationDynamoRepository(ddb *dynamodb.Client, tableName string) *ReconciliationDynamoRepository {
	if tableName == "" {
		tableName = defaultReconciliationTableName
	}
	return &ReconciliationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReconciliationDynamoRepository) Create(ctx context.Context, rec entities.PendingReconciliation) (entities.PendingReconciliation, error) {
	av, err := attributevalue.MarshalMap(toReconciliationItem(rec))
	if err != nil {
		return entities.PendingReconciliation{}, err
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
		return entities.PendingReconciliation{}, err
	}
	return rec, nil
}

// ListPending scans the whole table; the marker volume is expected to stay
// small since every entry needs a human to resolve it.
func (r *ReconciliationDynamoRepository) ListPending(ctx context.Context) ([]entities.PendingReconciliation, error) {
	out := []entities.PendingReconciliation{}
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.ReconciliationPending)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []reconciliationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromReconciliationItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ReconciliationDynamoRepository) Resolve(ctx context.Context, id string) (entities.PendingReconciliation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #resolved_at = :resolved_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.ReconciliationResolved)},
			":resolved_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#resolved_at": "resolved_at",
		}
		return expr, vals, names
	})
}

func (r *ReconciliationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PendingReconciliation, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PendingReconciliation{}, nil
		}
		return entities.PendingReconciliation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PendingReconciliation{}, nil
	}
	var it reconciliationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PendingReconciliation{}, err
	}
	return fromReconciliationItem(it), nil
}

func toReconciliationItem(r entities.PendingReconciliation) reconciliationItem {
	it := reconciliationItem{
		ID:         r.ID,
		Kind:       string(r.Kind),
		EntityID:   r.EntityID,
		RelatedIDs: r.RelatedIDs,
		Reason:     r.Reason,
		Status:     string(r.Status),
		CreatedAt:  formatTime(r.CreatedAt),
	}
	if r.ResolvedAt != nil {
		it.ResolvedAt = formatTime(*r.ResolvedAt)
	}
	return it
}

func fromReconciliationItem(it reconciliationItem) entities.PendingReconciliation {
	out := entities.PendingReconciliation{
		ID:         it.ID,
		Kind:       entities.ReconciliationKind(it.Kind),
		EntityID:   it.EntityID,
		RelatedIDs: it.RelatedIDs,
		Reason:     it.Reason,
		Status:     entities.ReconciliationStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
	}
	if it.ResolvedAt != "" {
		t := parseTime(it.ResolvedAt)
		out.ResolvedAt = &t
	}
	return out
}
