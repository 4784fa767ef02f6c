package routes

import (
	"kensetsu_match/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices          = "/invoices"
	PathContracts         = "/contracts"
	PathBilling           = "/billing"
	PathOrganizations     = "/organizations"
	PathContractors       = "/contractors"
	PathSignatureRequests = "/signature-requests"
	PathWebhooks          = "/webhooks"
)

func addSettlementRoutes(
	rg *gin.RouterGroup,
	invoiceHandler *handlers.InvoiceHandler,
	billingCycleHandler *handlers.BillingCycleHandler,
	signatureHandler *handlers.SignatureHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.GenerateInvoice)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:invoice_id/pay", invoiceHandler.MarkInvoicePaid)
		invoices.PATCH("/:invoice_id/cancel", invoiceHandler.CancelInvoice)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.GET("/:contract_id/invoices", invoiceHandler.ListInvoicesByContract)
	}

	billing := rg.Group(PathBilling)
	{
		billing.POST("/close", billingCycleHandler.ClosePeriod)
		billing.POST(PathOrganizations+"/:org_id/statements", billingCycleHandler.CreateStatement)
		billing.GET(PathContractors+"/:contractor_id/payout", billingCycleHandler.GetPayout)
	}

	signatures := rg.Group(PathSignatureRequests)
	{
		signatures.POST("", signatureHandler.CreateSignatureRequest)
		signatures.GET("/:request_id", signatureHandler.GetSignatureRequest)
		signatures.POST("/:request_id/poll", signatureHandler.PollSignatureRequest)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/esign", webhookHandler.HandleESignEvent)
	}
}
