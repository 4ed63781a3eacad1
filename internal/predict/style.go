package predict

// Style is the display treatment of a predicted label.
type Style string

const (
    StyleError   Style = "error"
    StyleWarning Style = "warning"
    StyleSuccess Style = "success"
)

// StyleFor matches the decoded label exactly; anything other than High or Moderate is shown as
// success.
func StyleFor(label string) Style {
    switch label {
    case "High":
        return StyleError
    case "Moderate":
        return StyleWarning
    default:
        return StyleSuccess
    }
}

func (s Style) Icon() string {
    switch s {
    case StyleError:
        return "🚨"
    case StyleWarning:
        return "⚠️"
    default:
        return "✅"
    }
}

const Caveat = `Este modelo foi treinado utilizando dados públicos de mercado. Durante a fase de validação técnica, ` +
    `observou-se que as variáveis disponíveis (Salário, Localização, Experiência) possuem baixa correlação ` +
    `linear com o impacto da IA, resultando em uma acurácia preditiva limitada (~33%). ` +
    `Portanto, esta ferramenta deve ser utilizada para fins educacionais e de demonstração técnica do pipeline ` +
    `de Machine Learning, e não como base única para decisões reais de carreira.`
