package service

import "github.com/MKhiriev/lacnutry/models"

const (
	quizNameQuestionID  = 14
	quizEmailQuestionID = 15
)

var quizQuestions = []models.QuizQuestion{
	{
		ID:          1,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Você costuma sentir desconforto após consumir leite?",
		Options:     []string{"Sim, sempre", "Às vezes", "Raramente", "Nunca"},
		Explanation: "Compreender seus sintomas é o primeiro passo para uma vida mais saudável!",
	},
	{
		ID:          2,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Qual destes sintomas você experimenta mais?",
		Options:     []string{"Gases e inchaço", "Dor abdominal", "Náusea", "Diarreia"},
		Explanation: "Identificar seus sintomas nos ajuda a personalizar suas receitas.",
	},
	{
		ID:          3,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Há quanto tempo você tem sintomas de intolerância?",
		Options:     []string{"Menos de 6 meses", "6 meses a 1 ano", "1 a 3 anos", "Mais de 3 anos"},
		Explanation: "Conhecer seu histórico nos ajuda a entender melhor suas necessidades.",
	},
	{
		ID:          4,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Você já evitou eventos sociais por medo de consumir lactose?",
		Options:     []string{"Sim, várias vezes", "Algumas vezes", "Raramente", "Nunca"},
		Explanation: "Com as receitas certas, você pode aproveitar qualquer evento sem preocupações.",
	},
	{
		ID:          5,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Qual alternativa ao leite você já experimentou?",
		Options:     []string{"Leite de amêndoas", "Leite de coco", "Leite de aveia", "Nenhuma"},
		Explanation: "Conhecer suas experiências nos ajuda a recomendar as melhores receitas para você.",
	},
	{
		ID:          6,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Quanto tempo após consumir lactose os sintomas aparecem?",
		Options:     []string{"30 minutos a 2 horas", "Imediatamente", "Após 6 horas", "No dia seguinte"},
		Explanation: "Essas informações são importantes para personalizar suas recomendações.",
	},
	{
		ID:          7,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Você se sente limitado(a) nas escolhas alimentares?",
		Options:     []string{"Sim, muito", "Um pouco", "Raramente", "Não"},
		Explanation: "Não se preocupe! Existem milhares de receitas deliciosas sem lactose esperando por você.",
	},
	{
		ID:          8,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Qual nutriente você se preocupa em não consumir o suficiente?",
		Options:     []string{"Cálcio", "Proteína", "Vitamina D", "Todos acima"},
		Explanation: "Há muitas fontes de nutrientes além dos laticínios! Vamos te mostrar.",
	},
	{
		ID:          9,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Você gosta de cozinhar?",
		Options:     []string{"Sim, adoro!", "Sim, mas não tenho muito tempo", "Às vezes", "Prefiro não cozinhar"},
		Explanation: "Vamos adaptar nossas sugestões ao seu estilo de vida!",
	},
	{
		ID:          10,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Qual tipo de receita você mais procura?",
		Options:     []string{"Doces e sobremesas", "Pratos principais", "Lanches e snacks", "Bebidas"},
		Explanation: "Suas preferências nos ajudam a mostrar o conteúdo mais relevante.",
	},
	{
		ID:       11,
		Kind:     models.QuestionMultipleChoice,
		Question: "Qual é seu nível de experiência com alimentação sem lactose?",
		Options: []string{
			"Iniciante - acabei de descobrir",
			"Intermediário - alguns meses",
			"Avançado - mais de 1 ano",
			"Expert - vivo sem lactose há anos",
		},
		Explanation: "Vamos personalizar o conteúdo de acordo com sua experiência.",
	},
	{
		ID:          12,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Você lê os rótulos dos alimentos antes de comprar?",
		Options:     []string{"Sempre", "Frequentemente", "Às vezes", "Nunca"},
		Explanation: "Vamos te ensinar a identificar lactose escondida em produtos inesperados.",
	},
	{
		ID:          13,
		Kind:        models.QuestionMultipleChoice,
		Question:    "Quais substitutos você gostaria de aprender a usar?",
		Options:     []string{"Leites vegetais", "Queijos sem lactose", "Manteigas e cremes", "Todos"},
		Explanation: "Perfeito! Temos receitas incríveis com todos esses substitutos.",
	},
	{
		ID:          quizNameQuestionID,
		Kind:        models.QuestionTextName,
		Question:    "Qual é o seu nome?",
		Placeholder: "Digite seu nome completo",
	},
	{
		ID:          quizEmailQuestionID,
		Kind:        models.QuestionTextEmail,
		Question:    "Qual é o seu e-mail?",
		Placeholder: "Digite seu melhor e-mail",
	},
}

// quizInterstitials are keyed by the index of the question they precede.
var quizInterstitials = map[int]models.Interstitial{
	3: {
		Title:   "Você Não Está Sozinho(a)!",
		Message: "65% da população mundial tem algum grau de intolerância à lactose. Você faz parte de uma comunidade enorme!",
	},
	7: {
		Title:   "Liberdade Alimentar",
		Message: "Com o LacNutry, você terá acesso a centenas de receitas deliciosas sem lactose. Sem limitações, só possibilidades!",
	},
	11: {
		Title:   "Saúde e Bem-Estar",
		Message: "Eliminar a lactose pode melhorar sua digestão, energia e qualidade de vida. Você está no caminho certo!",
	},
	14: {
		Title:   "Quase Lá!",
		Message: "Você já conhece mais sobre intolerância à lactose do que a maioria das pessoas. Continue brilhando!",
	},
}
