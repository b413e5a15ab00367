package content

var catalogPT = Catalog{
	HowItWorks: []Item{
		{
			OrderLabel:  "01",
			Title:       "Faça Upload das Fotos",
			Description: "Fotografe cada cômodo do imóvel e envie tudo pela plataforma em poucos minutos, direto do celular.",
			Icon:        "📸",
		},
		{
			OrderLabel:  "02",
			Title:       "IA Analisa o Imóvel",
			Description: "A Mariah identifica ambientes, materiais e o estado de conservação de cada item fotografado.",
			Icon:        "🤖",
		},
		{
			OrderLabel:  "03",
			Title:       "Laudo Profissional Gerado",
			Description: "Receba um laudo de vistoria completo, padronizado e pronto para revisão e assinatura.",
			Icon:        "📄",
		},
		{
			OrderLabel:  "04",
			Title:       "Baixe e Compartilhe",
			Description: "Exporte em PDF e compartilhe com proprietários, inquilinos e imobiliárias com um clique.",
			Icon:        "📤",
		},
	},
	Features: []Item{
		{Title: "Laudos em Minutos", Description: "O que levava horas de digitação agora fica pronto enquanto você ainda está no imóvel.", Icon: "⚡"},
		{Title: "Análise Detalhada por IA", Description: "Cada foto é descrita com ambiente, acabamentos e avarias encontradas.", Icon: "🎯"},
		{Title: "Vistorias de Entrada e Saída", Description: "Modelos prontos para os dois momentos da locação, com o mesmo padrão de qualidade.", Icon: "🏠"},
		{Title: "Comparativo Automático", Description: "Compare a vistoria de saída com a de entrada e destaque o que mudou.", Icon: "📊"},
		{Title: "Dados Protegidos", Description: "Fotos e laudos armazenados com criptografia e acesso restrito à sua equipe.", Icon: "🔒"},
		{Title: "Feito para o Celular", Description: "Toda a vistoria acontece no navegador do seu smartphone, sem instalar nada.", Icon: "📱"},
	},
	Plans: []Plan{
		{
			Name:        "Avulso",
			PriceMinor:  4990,
			Currency:    "BRL",
			Period:      "por laudo",
			Description: "Para corretores que fazem vistorias de vez em quando.",
			Features:    []string{"1 laudo completo", "Fotos ilimitadas", "Exportação em PDF"},
			CTALabel:    "Começar agora",
		},
		{
			Name:        "Profissional",
			PriceMinor:  19900,
			Currency:    "BRL",
			Period:      "por mês",
			Description: "Para quem vive de vistorias e precisa de agilidade todos os dias.",
			Features:    []string{"Até 20 laudos por mês", "Comparativo de entrada e saída", "Sua marca no laudo", "Suporte prioritário"},
			Highlight:   true,
			CTALabel:    "Assinar o Profissional",
		},
		{
			Name:        "Imobiliária",
			PriceMinor:  49900,
			Currency:    "BRL",
			Period:      "por mês",
			Description: "Para equipes que administram carteiras inteiras de imóveis.",
			Features:    []string{"Laudos ilimitados", "Múltiplos usuários", "Painel da carteira", "Gerente de conta dedicado"},
			CTALabel:    "Falar com vendas",
		},
	},
	CTA: []Item{
		{Title: "Sem cartão de crédito", Description: "Crie sua conta e gere o primeiro laudo sem compromisso.", Icon: "💳"},
		{Title: "Pronto em minutos", Description: "Do upload das fotos ao PDF final em menos de dez minutos.", Icon: "⏱️"},
		{Title: "Cancele quando quiser", Description: "Sem fidelidade e sem multa.", Icon: "✅"},
	},
	FAQ: []FAQEntry{
		{
			Question: "O laudo gerado pela Mariah tem validade?",
			Answer:   "Sim. O laudo segue o formato usado pelo mercado e pode ser **revisado e assinado** pelo responsável pela vistoria antes de ser anexado ao contrato.",
		},
		{
			Question: "Quantas fotos posso enviar?",
			Answer:   "Não há limite de fotos por laudo. Recomendamos:\n\n- uma foto geral de cada cômodo\n- fotos de detalhe de cada avaria",
		},
		{
			Question: "Preciso instalar algum aplicativo?",
			Answer:   "Não. A Mariah funciona direto no navegador do celular ou do computador.",
		},
		{
			Question: "Como funciona o cancelamento?",
			Answer:   "Você cancela a qualquer momento em *Minha Conta*. O plano continua ativo até o fim do período já pago.",
		},
	},
}
