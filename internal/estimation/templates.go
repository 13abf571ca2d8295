package estimation

// Posting categories
const (
	CategoryDeveloper = "developer"
	CategoryProduct   = "product"
	CategoryData      = "data"
	CategoryDesign    = "design"
	CategoryDevops    = "devops"
	CategoryMarketing = "marketing"
	CategoryGeneral   = "general"
)

// categoryOrder fixes the classification priority. The first category whose
// keyword matches the title wins.
var categoryOrder = []string{
	CategoryDeveloper,
	CategoryProduct,
	CategoryData,
	CategoryDesign,
	CategoryDevops,
	CategoryMarketing,
}

var categoryKeywords = map[string][]string{
	CategoryDeveloper: {"développeur", "developer", "ingénieur logiciel", "software", "fullstack", "full-stack", "backend", "back-end", "frontend", "front-end", "mobile"},
	CategoryProduct:   {"product", "produit", "product owner", "product manager"},
	CategoryData:      {"data", "données", "analyste", "analyst", "scientist", "machine learning", "ml"},
	CategoryDesign:    {"design", "ux", "ui", "graphiste"},
	CategoryDevops:    {"devops", "sre", "cloud", "infrastructure", "plateforme", "platform"},
	CategoryMarketing: {"marketing", "growth", "communication", "seo", "contenu", "content"},
}

type postingTemplate struct {
	description  string
	requirements []string
	skills       []string
}

var categoryTemplates = map[string]postingTemplate{
	CategoryDeveloper: {
		description: "Nous recherchons un(e) %s pour renforcer notre équipe technique. " +
			"Vous participerez à la conception, au développement et à la maintenance de nos applications, " +
			"dans un environnement agile où la qualité du code et la collaboration sont au cœur de nos pratiques. " +
			"Vous serez impliqué(e) dans les choix d'architecture et contribuerez à l'amélioration continue de la plateforme.",
		requirements: []string{
			"Expérience significative en développement logiciel",
			"Maîtrise d'au moins un langage de programmation moderne",
			"Pratique des tests automatisés et de l'intégration continue",
			"Bonne connaissance des bases de données relationnelles",
			"Capacité à travailler en équipe agile",
			"Anglais technique courant",
		},
		skills: []string{"JavaScript", "TypeScript", "React", "Node.js", "SQL", "Git"},
	},
	CategoryProduct: {
		description: "Nous recherchons un(e) %s pour piloter la vision produit et sa feuille de route. " +
			"En lien direct avec les équipes techniques, le design et les parties prenantes métier, " +
			"vous prioriserez le backlog, cadrerez les fonctionnalités et mesurerez leur impact utilisateur.",
		requirements: []string{
			"Expérience en gestion de produit digital",
			"Maîtrise des méthodologies agiles (Scrum, Kanban)",
			"Capacité à traduire des besoins métier en user stories",
			"Aisance avec les outils d'analytics produit",
			"Excellente communication écrite et orale",
			"Sens du détail et orientation utilisateur",
		},
		skills: []string{"Product Management", "Agile", "Jira", "Analytics", "Roadmapping"},
	},
	CategoryData: {
		description: "Nous recherchons un(e) %s pour transformer nos données en leviers de décision. " +
			"Vous construirez des pipelines fiables, des analyses et des modèles au service des équipes produit et métier, " +
			"et contribuerez à diffuser une culture data dans l'entreprise.",
		requirements: []string{
			"Solide expérience en analyse ou ingénierie de données",
			"Maîtrise de SQL et de Python",
			"Connaissance des outils de visualisation de données",
			"Expérience des entrepôts de données cloud",
			"Rigueur statistique et esprit critique",
			"Capacité à vulgariser des résultats techniques",
		},
		skills: []string{"Python", "SQL", "Pandas", "dbt", "Tableau"},
	},
	CategoryDesign: {
		description: "Nous recherchons un(e) %s pour concevoir des expériences utilisateur simples et élégantes. " +
			"Du wireframe au design system, vous travaillerez main dans la main avec le produit et les développeurs " +
			"pour livrer des interfaces cohérentes et accessibles.",
		requirements: []string{
			"Portfolio démontrant une pratique UX/UI solide",
			"Maîtrise de Figma ou équivalent",
			"Expérience des tests utilisateurs",
			"Connaissance des standards d'accessibilité",
			"Capacité à maintenir un design system",
			"Sensibilité au détail visuel",
		},
		skills: []string{"Figma", "UX Research", "Design System", "Prototypage", "Accessibilité"},
	},
	CategoryDevops: {
		description: "Nous recherchons un(e) %s pour fiabiliser et automatiser notre infrastructure. " +
			"Vous ferez évoluer nos déploiements, notre observabilité et notre posture de sécurité, " +
			"avec un objectif constant : des mises en production fréquentes et sereines.",
		requirements: []string{
			"Expérience en administration de systèmes Linux",
			"Pratique de l'infrastructure as code",
			"Maîtrise des conteneurs et de leur orchestration",
			"Expérience d'un cloud public majeur",
			"Culture de l'observabilité et de l'astreinte",
			"Sens de l'automatisation",
		},
		skills: []string{"Kubernetes", "Docker", "Terraform", "AWS", "CI/CD", "Linux"},
	},
	CategoryMarketing: {
		description: "Nous recherchons un(e) %s pour accélérer notre acquisition et notre notoriété. " +
			"Vous définirez et exécuterez des campagnes multicanales, analyserez leurs performances " +
			"et collaborerez étroitement avec les équipes produit et commerciales.",
		requirements: []string{
			"Expérience en marketing digital",
			"Maîtrise des leviers d'acquisition (SEO, SEA, social)",
			"Pratique des outils d'emailing et de CRM",
			"Capacité d'analyse des indicateurs de campagne",
			"Excellentes qualités rédactionnelles",
			"Créativité et autonomie",
		},
		skills: []string{"SEO", "SEA", "Google Analytics", "CRM", "Copywriting"},
	},
	CategoryGeneral: {
		description: "Nous recherchons un(e) %s pour rejoindre notre équipe. " +
			"Vous contribuerez au développement de l'activité et participerez aux projets transverses de l'entreprise, " +
			"dans un environnement bienveillant qui valorise l'initiative.",
		requirements: []string{
			"Expérience pertinente dans une fonction similaire",
			"Excellent relationnel",
			"Capacité d'organisation et de priorisation",
			"Autonomie et esprit d'initiative",
			"Maîtrise des outils bureautiques",
		},
		skills: []string{"Communication", "Organisation", "Travail en équipe"},
	},
}

// leadershipRequirements are appended when the experience label carries a
// seniority marker (Senior, 5+, Lead).
var leadershipRequirements = []string{
	"Expérience d'encadrement ou de mentorat d'équipe",
	"Capacité à porter des décisions techniques structurantes",
}

// baseBenefits are always present, in this order.
var baseBenefits = []string{
	"Mutuelle d'entreprise prise en charge",
	"Tickets restaurant",
	"Télétravail partiel",
	"Budget formation annuel",
}

// benefitPool is sampled from randomly to complete the benefits list.
var benefitPool = []string{
	"RTT et congés supplémentaires",
	"Horaires flexibles",
	"Matériel au choix",
	"Événements d'équipe réguliers",
	"Plan d'épargne entreprise",
	"Conciergerie d'entreprise",
	"Salle de sport partenaire",
}
