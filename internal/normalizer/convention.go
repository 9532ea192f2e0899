package normalizer

// NumericConvention descreve como uma fonte formata números nas planilhas
type NumericConvention struct {
	ThousandsSeparator string
	DecimalSeparator   string
	// PercentAsFraction converte "12,5%" em 0.125 em vez de 12.5
	PercentAsFraction bool
	// CurrencyPreScaledBy100 indica que a fonte exporta moeda multiplicada por 100
	CurrencyPreScaledBy100 bool
}

// DateConvention descreve os formatos de data aceitos e a correção de dias aplicada
type DateConvention struct {
	Layouts   []string
	DayOffset int
}

// Convention agrupa as convenções de uma fonte de dados
type Convention struct {
	Numeric NumericConvention
	Date    DateConvention
}

// BrazilianNumeric é o formato padrão das planilhas: "1.234,56"
var BrazilianNumeric = NumericConvention{
	ThousandsSeparator: ".",
	DecimalSeparator:   ",",
}
