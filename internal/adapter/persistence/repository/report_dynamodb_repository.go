package repository

import (
	"context"
	"log"

	"salomao_ai/internal/domain/entities"
	"salomao_ai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultReportsTableName = "financial_reports"

// reportTableAPI is the subset of *dynamodb.Client the repository calls.
type reportTableAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type reportItem struct {
	ID          string   `dynamodbav:"id"`
	Renda       string   `dynamodbav:"renda"`
	Gastos      string   `dynamodbav:"gastos"`
	Dividas     string   `dynamodbav:"dividas"`
	Economia    string   `dynamodbav:"economia"`
	Objetivo    string   `dynamodbav:"objetivo"`
	Resumo      string   `dynamodbav:"resumo"`
	Organizacao string   `dynamodbav:"organizacao"`
	Plano       []string `dynamodbav:"plano"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

// ReportDynamoRepository persists finished FinancialReports in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts are stored as decimal strings so they read back exactly.

type ReportDynamoRepository struct {
	ddb       reportTableAPI
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb reportTableAPI, tableName string) *ReportDynamoRepository {
	if tableName == "" {
		tableName = DefaultReportsTableName
	}
	return &ReportDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, s entities.StoredReport) (entities.StoredReport, error) {
	av, err := attributevalue.MarshalMap(toReportItem(s))
	if err != nil {
		return entities.StoredReport{}, err
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
		log.Printf("[report][repository] put failed table=%s id=%s err=%v", r.tableName, s.ID, err)
		return entities.StoredReport{}, err
	}
	return s, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.StoredReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Printf("[report][repository] get failed table=%s id=%s err=%v", r.tableName, id, err)
		return entities.StoredReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredReport{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredReport{}, err
	}
	return fromReportItem(it), nil
}

func toReportItem(s entities.StoredReport) reportItem {
	return reportItem{
		ID:          s.ID,
		Renda:       floatToString(s.Report.Renda),
		Gastos:      floatToString(s.Report.Gastos),
		Dividas:     floatToString(s.Report.Dividas),
		Economia:    floatToString(s.Report.Economia),
		Objetivo:    s.Report.Objetivo,
		Resumo:      s.Report.Resumo,
		Organizacao: s.Report.Organizacao,
		Plano:       s.Report.Plano,
		CreatedAt:   formatTime(s.CreatedAt),
	}
}

func fromReportItem(it reportItem) entities.StoredReport {
	return entities.StoredReport{
		ID: it.ID,
		Report: entities.FinancialReport{
			Renda:       parseFloat(it.Renda),
			Gastos:      parseFloat(it.Gastos),
			Dividas:     parseFloat(it.Dividas),
			Economia:    parseFloat(it.Economia),
			Objetivo:    it.Objetivo,
			Resumo:      it.Resumo,
			Organizacao: it.Organizacao,
			Plano:       it.Plano,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}
