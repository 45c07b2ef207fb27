package api

import (
	"github.com/gin-gonic/gin"
)

var financeTips = []string{
	"Anote todas as despesas, inclusive as pequenas.",
	"Separe uma parte da renda assim que ela entrar.",
	"Monte uma reserva de emergência de pelo menos três meses de gastos.",
	"Revise assinaturas e serviços que você não usa.",
	"Defina metas com valor e prazo para acompanhar o progresso.",
	"Compare preços de fornecedores antes de repor materiais.",
}

// Tips static finance tips
// @Summary Finance tips
// @Tags tips
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /dicas [get]
func Tips(c *gin.Context) {
	Success(c, financeTips)
}
