package status

import "gorm.io/gorm"

// Vocabulário fixo do sistema. A posição na lista define a ordem inicial; o
// primeiro status do domínio "os" é onde toda ordem nasce.
var fixos = []StatusDefinicao{
	{Nome: "Aberta", Cor: "#6B7280", Ordem: 0, Dominio: DominioOS, Fixo: true},
	{Nome: "Em análise", Cor: "#3B82F6", Ordem: 1, Dominio: DominioOS, Fixo: true},
	{Nome: "Orçamento enviado", Cor: "#8B5CF6", Ordem: 2, Dominio: DominioOS, Fixo: true},
	{Nome: "Aguardando aprovação", Cor: "#F59E0B", Ordem: 3, Dominio: DominioOS, Fixo: true},
	{Nome: "Aprovado", Cor: "#10B981", Ordem: 4, Dominio: DominioOS, Fixo: true},
	{Nome: "Em reparo", Cor: "#0EA5E9", Ordem: 5, Dominio: DominioOS, Fixo: true},
	{Nome: "Reparo concluído", Cor: "#22C55E", Ordem: 6, Dominio: DominioOS, Fixo: true},
	{Nome: "Entregue", Cor: "#16A34A", Ordem: 7, Dominio: DominioOS, Fixo: true},

	{Nome: "Pendente", Cor: "#6B7280", Ordem: 0, Dominio: DominioTecnico, Fixo: true},
	{Nome: "Em andamento", Cor: "#3B82F6", Ordem: 1, Dominio: DominioTecnico, Fixo: true},
	{Nome: "Aguardando aprovação", Cor: "#F59E0B", Ordem: 2, Dominio: DominioTecnico, Fixo: true},
	{Nome: "Aprovado", Cor: "#10B981", Ordem: 3, Dominio: DominioTecnico, Fixo: true},
	{Nome: "Finalizada", Cor: "#16A34A", Ordem: 4, Dominio: DominioTecnico, Fixo: true},
}

// SeedFixos garante que o vocabulário fixo exista no banco. Idempotente:
// entradas já presentes não são tocadas.
func SeedFixos(db *gorm.DB) error {
	for _, f := range fixos {
		var existente StatusDefinicao
		err := db.Where("dominio = ? AND fixo = true AND nome = ?", f.Dominio, f.Nome).
			First(&existente).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		s := f
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	return nil
}
