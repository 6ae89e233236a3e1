package content

// Default returns the built-in MUV Academia page.
func Default() *Page {
	return &Page{
		Meta: Meta{
			Title:       "MUV Academia - Jiu-Jitsu, Funcional, Boxe e MMA",
			Description: "Academia completa com aulas de Jiu-Jitsu, Funcional, Boxe e MMA. Conheça o Projeto SOMA - aulas gratuitas de Jiu-Jitsu para crianças.",
			Lang:        "pt-BR",
			Brand:       "MUV",
		},
		Nav: []NavItem{
			{Label: "Modalidades", Anchor: "modalidades"},
			{Label: "Projeto SOMA", Anchor: "soma"},
			{Label: "Depoimentos", Anchor: "depoimentos"},
			{Label: "Contato", Anchor: "contato"},
		},
		Hero: Hero{
			Headline:  "Transforme seu corpo,",
			Highlight: "fortaleça sua mente",
			Lead:      "Jiu-Jitsu, Funcional, Boxe e MMA com os melhores professores da região. Marque sua aula hoje mesmo!",
			Actions: []Link{
				{Label: "Marque Sua Aula Hoje", Anchor: "contato"},
				{Label: "Conhecer Modalidades", Anchor: "modalidades"},
			},
		},
		Services: Section{
			Anchor:   "modalidades",
			Title:    "Nossas Modalidades",
			Subtitle: "Escolha a modalidade ideal para seus objetivos e comece sua transformação hoje mesmo",
			Items: []Service{
				{
					Icon:        "🥋",
					Title:       "Jiu-Jitsu",
					Description: "Arte marcial brasileira focada em técnicas de solo, alavancas e estrangulamentos. Desenvolva disciplina, autocontrole e defesa pessoal efetiva.",
					Benefits:    []string{"Defesa pessoal", "Disciplina mental", "Condicionamento físico"},
					Action:      Link{Label: "Experimentar", Anchor: "contato"},
				},
				{
					Icon:        "💪",
					Title:       "Funcional",
					Description: "Treinamento dinâmico que trabalha força, resistência e mobilidade. Exercícios variados para melhorar seu condicionamento físico geral.",
					Benefits:    []string{"Emagrecimento", "Força e resistência", "Mobilidade"},
					Action:      Link{Label: "Experimentar", Anchor: "contato"},
				},
				{
					Icon:        "🥊",
					Title:       "Boxe",
					Description: "A nobre arte do pugilismo. Aprimore reflexos, coordenação motora e condicionamento cardiovascular através de técnicas de socos e movimentação.",
					Benefits:    []string{"Reflexos rápidos", "Cardio intenso", "Coordenação motora"},
					Action:      Link{Label: "Experimentar", Anchor: "contato"},
				},
				{
					Icon:        "🏅",
					Title:       "MMA",
					Description: "Artes marciais mistas combinando técnicas de striking e grappling. Treinamento completo para quem busca o mais alto nível de preparação física e técnica.",
					Benefits:    []string{"Treino completo", "Alta performance", "Técnicas variadas"},
					Action:      Link{Label: "Experimentar", Anchor: "contato"},
				},
			},
		},
		Testimonials: Testimonials{
			Anchor:   "depoimentos",
			Title:    "O que dizem nossos alunos",
			Subtitle: "Histórias reais de transformação e superação",
			Items: []Testimonial{
				{Name: "Carlos Silva", Quote: "Treino na MUV há 2 anos e minha vida mudou completamente. Perdi 15kg e ganhei muita confiança.", Modality: "Funcional", Stars: 5},
				{Name: "Ana Paula", Quote: "O Jiu-Jitsu me ensinou disciplina e autocontrole. Os professores são excelentes e o ambiente é acolhedor.", Modality: "Jiu-Jitsu", Stars: 5},
				{Name: "Roberto Lima", Quote: "Melhor academia da região! Estrutura top e profissionais qualificados. Recomendo demais!", Modality: "MMA", Stars: 5},
			},
		},
		Program: Program{
			Anchor:      "soma",
			Title:       "Projeto SOMA",
			Tagline:     "Mais do que uma academia, somos uma comunidade que transforma vidas",
			Description: "O Projeto SOMA oferece aulas de Jiu-Jitsu para crianças em situação de vulnerabilidade social. Através do esporte, promovemos disciplina, respeito, autoestima e oportunidades para um futuro melhor.",
			Stats: []Stat{
				{Label: "Crianças atendidas", Target: 100, DurationMs: 1200},
			},
			Action: Link{Label: "Seja um Patrocinador", Anchor: "contato"},
		},
		Contact: Contact{
			Anchor:   "contato",
			Title:    "Comece Hoje Mesmo",
			Subtitle: "Agende sua aula experimental e descubra o poder da transformação",
			Address:  []string{"Av. Gen. Daltro Filho, 1655", "Hamburgo Velho, Novo Hamburgo"},
			Phone:    "+55 51 99311-6869",
			WhatsApp: "https://wa.me/5551993116869",
			Hours: []Hours{
				{Days: "Segunda a Sexta", Time: "05h - 21h"},
				{Days: "Sábado", Time: "08h - 13h"},
				{Days: "Domingo", Time: "09h - 12h"},
			},
			Form: FormContent{
				Title:            "Agende sua Aula",
				NameLabel:        "Nome Completo",
				NamePlaceholder:  "Seu nome",
				PhoneLabel:       "WhatsApp",
				PhonePlaceholder: "+55 51 99311-6869",
				ModalityLabel:    "Modalidade de Interesse",
				ModalityPrompt:   "Selecione uma modalidade",
				Submit:           "Agendar Aula",
			},
		},
		Footer: Footer{
			Tagline: "Transformando vidas através do esporte e da disciplina.",
			Social: []Social{
				{Network: "Facebook", URL: "#"},
				{Network: "Instagram", URL: "https://www.instagram.com/muv_nh/"},
				{Network: "TikTok", URL: "#"},
			},
			Copyright: "© 2025 MUV Academia. Todos os direitos reservados.",
		},
	}
}
