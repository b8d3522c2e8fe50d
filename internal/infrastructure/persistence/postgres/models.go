package postgres

// ConsultorModel é o model GORM para consultores
type ConsultorModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	SecundarioID string  `gorm:"column:secundario_id;type:varchar(36);uniqueIndex;not null"`
	Apelido      string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Senha        string  `gorm:"type:varchar(255);not null"`
	Imagem       *string `gorm:"type:text"`
	Admin        bool    `gorm:"not null;default:false"`
}

func (ConsultorModel) TableName() string {
	return "consultores"
}

// ColaboradorFCamaraModel é o model GORM do diretório de funcionários (somente leitura)
type ColaboradorFCamaraModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	NomeCompleto string `gorm:"column:nome_completo;type:varchar(255);not null"`
}

func (ColaboradorFCamaraModel) TableName() string {
	return "dados_fcamara"
}

// consultorPerfilRow recebe o resultado do join entre consultores e dados_fcamara
type consultorPerfilRow struct {
	NomeCompleto string
	Apelido      string
	Email        string
	Imagem       *string
	Admin        bool
}
