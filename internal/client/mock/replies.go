package mock

import "github.com/Sakee8848/property-management-ai/internal/client/models"

// cannedReply is one prepared assistant answer.
type cannedReply struct {
	content string
	sources []models.MessageSource
}

// cannedReplies maps trigger text to its prepared answer. Lookup is an exact
// string match; fuzzy or substring matching would change observable behavior.
var cannedReplies = map[string]cannedReply{
	"物业费怎么缴纳？": {
		content: "您可以通过以下方式缴纳物业费：\n\n1. 在线缴费：点击\"缴费中心\"选择账单进行支付\n2. 微信支付：关注物业公众号进行缴费\n3. 支付宝：搜索\"物业缴费\"小程序\n4. 现场缴费：到物业服务中心办理\n\n物业费缴费期限为每月月底前，逾期将产生滞纳金。",
		sources: []models.MessageSource{
			{DocumentID: 1, Title: "物业缴费指南", Score: 0.95},
		},
	},
	"如何报修？": {
		content: "报修服务流程：\n\n1. 在线报修：点击首页\"报修服务\"填写报修信息\n2. 电话报修：拨打物业服务热线 400-123-4567\n3. 现场报修：到物业服务中心前台登记\n\n我们承诺：\n- 紧急维修30分钟内响应\n- 一般维修24小时内处理",
		sources: []models.MessageSource{
			{DocumentID: 2, Title: "报修服务指南", Score: 0.92},
		},
	},
}

// fallbackReply answers anything outside the table, with no sources.
var fallbackReply = cannedReply{
	content: "感谢您的咨询！我是物业AI助手小管家。\n\n您的问题已记录，我会为您查询相关信息。如需紧急帮助，请拨打物业服务热线：400-123-4567",
	sources: []models.MessageSource{},
}

// sampleBill is the one record the simulated bill list returns.
var sampleBill = models.Bill{
	ID:            1,
	BillNumber:    "BILL202401001",
	FeeType:       "property",
	Amount:        1500,
	LateFee:       0,
	TotalAmount:   1500,
	BillingPeriod: "2024-01",
	DueDate:       "2024-01-31",
	Status:        models.BillStatusPending,
	CreatedAt:     "2024-01-01T00:00:00",
}
