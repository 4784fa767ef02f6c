package routes

import (
	"log"
	"os"
	"strconv"

	_ "kensetsu_match/docs" // This will be auto-generated
	"kensetsu_match/internal/adapter/http/handlers"
	repository2 "kensetsu_match/internal/adapter/persistence/repository"
	"kensetsu_match/internal/infrastructure/database"
	"kensetsu_match/internal/infrastructure/esign"
	"kensetsu_match/internal/infrastructure/notification"
	"kensetsu_match/internal/infrastructure/rendering"
	"kensetsu_match/internal/usecase"
	"kensetsu_match/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const (
	defaultTransferFee        = 550
	defaultOperatorFeePercent = 10.0
)

// Run will start the server
func Run() {
	logger.Init(os.Getenv("GIN_MODE"))
	defer logger.Sync()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	contractRepo := repository2.NewContractDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	payoutRepo := repository2.NewPayoutDynamoRepository(ddb)
	statementRepo := repository2.NewStatementDynamoRepository(ddb)
	signatureRepo := repository2.NewSignatureRequestDynamoRepository(ddb)

	renderer := rendering.NewLocalRenderer()
	notifier := notification.NewHTTPNotifier()

	provider, err := esign.NewClient()
	if err != nil {
		log.Fatalf("Failed to configure e-sign provider: %v", err)
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, contractRepo, renderer)
	billingCycleUseCase := usecase.NewBillingCycleUseCase(
		invoiceRepo, payoutRepo, statementRepo,
		getenvInt64("PAYOUT_TRANSFER_FEE", defaultTransferFee),
		getenvFloat("OPERATOR_FEE_PERCENT", defaultOperatorFeePercent),
	)
	signatureUseCase := usecase.NewSignatureUseCase(signatureRepo, contractRepo, provider, notifier)
	webhookUseCase := usecase.NewWebhookUseCase(signatureRepo, contractRepo, notifier)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	billingCycleHandler := handlers.NewBillingCycleHandler(billingCycleUseCase)
	signatureHandler := handlers.NewSignatureHandler(signatureUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase,
		os.Getenv("ESIGN_WEBHOOK_KEY"), os.Getenv("ESIGN_WEBHOOK_KEY_SECONDARY"))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSettlementRoutes(v1, invoiceHandler, billingCycleHandler, signatureHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("Invalid %s=%q, using default %d", key, v, def)
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Invalid %s=%q, using default %g", key, v, def)
	}
	return def
}
