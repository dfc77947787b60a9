package i18n

var french = Messages{
	Lang: French,
	Site: SiteMessages{Title: "SloganForge AI"},
	Nav: NavMessages{
		Home:     "Accueil",
		Generate: "Générateur",
		Language: "Langue",
	},
	Hero: HeroMessages{
		Title:       "Votre slogan parfait,",
		Subtitle:    "en 10 secondes chrono.",
		Description: "Laissez l'IA travailler pour vous ! Générez des slogans professionnels et percutants pour votre entreprise en quelques clics.",
		CTA:         "Essayer gratuitement",
		Examples:    "Voir des exemples",
	},
	Form: FormMessages{
		Title:               "Générateur de Slogans",
		Company:             "Nom de l'entreprise",
		CompanyPlaceholder:  "ex: TechVision",
		Industry:            "Secteur d'activité",
		IndustryPlaceholder: "ex: Technologie, Restauration, Mode",
		Keywords:            "Mots-clés (séparés par des virgules)",
		KeywordsPlaceholder: "ex: innovation, durabilité, qualité",
		Tone:                "Ton souhaité",
		ToneProfessional:    "Professionnel",
		ToneCreative:        "Créatif",
		ToneFriendly:        "Amical",
		ToneBold:            "Audacieux",
		Generate:            "Générer des slogans",
		Generating:          "Génération en cours...",
	},
	Results: ResultsMessages{
		Title:        "Vos slogans générés",
		Refine:       "Affiner les résultats",
		LengthAll:    "Tous",
		LengthShort:  "Court",
		LengthMedium: "Moyen",
		LengthLong:   "Long",
		Rate:         "Noter ce slogan",
		Copy:         "Copier",
		Copied:       "Copié!",
		Customize:    "Personnaliser",
		Download:     "Télécharger en PDF",
		Empty:        `Complétez le formulaire et cliquez sur "Générer" pour voir vos slogans ici.`,
	},
	Export: ExportMessages{
		Title:          "Personnalisez votre slogan",
		Font:           "Police",
		Color:          "Couleur",
		Size:           "Taille",
		Logo:           "Ajouter un logo",
		LogoUpload:     "Téléverser",
		LogoPosition:   "Position du logo",
		LogoSize:       "Taille du logo",
		Background:     "Arrière-plan",
		Alignment:      "Alignement",
		AlignLeft:      "Gauche",
		AlignCenter:    "Centré",
		AlignRight:     "Droite",
		PositionTop:    "En haut",
		PositionBottom: "En bas",
		PositionLeft:   "À gauche",
		PositionRight:  "À droite",
		Preview:        "Aperçu",
		Refresh:        "Mettre à jour l'aperçu",
		Download:       "Télécharger en PDF",
		DownloadPNG:    "Télécharger en PNG",
		DownloadText:   "Télécharger en texte",
		Format:         "Format",
		Portrait:       "Portrait",
		Landscape:      "Paysage",
		Back:           "Retour aux slogans",
	},
	Features: FeaturesMessages{
		Title: "Pourquoi utiliser SloganForge AI?",
		AI: FeatureMessages{
			Title:       "Propulsé par l'IA",
			Description: "Notre algorithme avancé génère des slogans uniques adaptés à votre entreprise.",
		},
		Fast: FeatureMessages{
			Title:       "Rapide et efficace",
			Description: "Obtenez des dizaines d'idées créatives en quelques secondes seulement.",
		},
		Custom: FeatureMessages{
			Title:       "Hautement personnalisable",
			Description: "Personnalisez vos slogans et exportez-les en haute résolution.",
		},
		Multilingual: FeatureMessages{
			Title:       "Multilingue",
			Description: "Générez des slogans en français et en anglais.",
		},
	},
	Footer: FooterMessages{
		Copyright: "© 2025 SloganForge AI. Tous droits réservés.",
		Privacy:   "Politique de confidentialité",
		Terms:     "Conditions d'utilisation",
		Contact:   "Contact",
	},
	Errors: ErrorMessages{
		Company:         "Le nom de l'entreprise est requis.",
		Industry:        "Le secteur d'activité est requis.",
		Keywords:        "Indiquez au moins un mot-clé.",
		Rating:          "La note doit être comprise entre 1 et 5.",
		Style:           "Les options de personnalisation sont invalides.",
		Logo:            "Le logo doit être une image PNG, JPEG ou GIF.",
		NotFound:        "Ce slogan n'existe plus. Générez une nouvelle série.",
		TooManyRequests: "Trop de requêtes. Réessayez dans quelques secondes.",
		Internal:        "Une erreur est survenue. Veuillez réessayer.",
	},
	Privacy: LegalPage{
		Title:    "Politique de Confidentialité",
		Sections: []LegalSection{
			{
				Heading:    "Introduction",
				Paragraphs: []string{
					"Chez IMBALL, propriétaire de SloganForge AI, nous prenons très au sérieux la protection de vos données personnelles. Cette politique de confidentialité explique comment nous collectons, utilisons et protégeons vos informations lorsque vous utilisez notre service.",
				},
			},
			{
				Heading:    "Collecte d'Informations",
				Paragraphs: []string{"Lorsque vous utilisez SloganForge AI, nous pouvons collecter les informations suivantes :"},
				Items: []string{
					"Les données que vous saisissez dans notre générateur de slogans (nom d'entreprise, secteur d'activité, etc.)",
					"Des informations sur votre navigateur et appareil",
					"Adresse IP et données de localisation approximative",
					"Les slogans générés et vos préférences",
				},
			},
			{
				Heading:    "Utilisation des Informations",
				Paragraphs: []string{"Nous utilisons les informations collectées pour :"},
				Items: []string{
					"Fournir, exploiter et améliorer notre service",
					"Améliorer la qualité des slogans générés",
					"Comprendre comment les utilisateurs interagissent avec notre service",
					"Détecter et prévenir les fraudes",
				},
			},
			{
				Heading:    "Protection des Données",
				Paragraphs: []string{
					"IMBALL met en œuvre des mesures de sécurité appropriées pour protéger vos informations personnelles contre tout accès, utilisation, divulgation, modification ou destruction non autorisés.",
				},
			},
			{
				Heading:    "Cookies et Technologies Similaires",
				Paragraphs: []string{
					"Nous utilisons des cookies et des technologies similaires pour améliorer votre expérience sur notre site, analyser notre trafic et personnaliser le contenu.",
				},
			},
			{
				Heading:    "Partage d'Informations",
				Paragraphs: []string{"Nous ne vendons pas vos données personnelles. Nous pouvons partager certaines informations avec :"},
				Items: []string{
					"Nos fournisseurs de services qui nous aident à exploiter notre service",
					"Des autorités légales si nous y sommes légalement contraints",
				},
			},
			{
				Heading:    "Vos Droits",
				Paragraphs: []string{
					"Selon votre juridiction, vous pouvez avoir certains droits concernant vos données personnelles, notamment le droit d'accéder, de rectifier ou de supprimer vos données.",
				},
			},
			{
				Heading:    "Modifications de cette Politique",
				Paragraphs: []string{
					"Nous pouvons mettre à jour cette politique de confidentialité périodiquement. Nous vous encourageons à consulter régulièrement cette page pour rester informé des éventuelles modifications.",
				},
			},
			{
				Heading:    "Contact",
				Paragraphs: []string{
					"Si vous avez des questions concernant notre politique de confidentialité, veuillez nous contacter à l'adresse suivante : IMBALL, contact@imball-official.com",
				},
			},
		},
		Updated: "Dernière mise à jour : 2 Mai 2025",
	},
	Terms: LegalPage{
		Title:    "Conditions d'Utilisation",
		Sections: []LegalSection{
			{
				Heading:    "Introduction",
				Paragraphs: []string{
					"Bienvenue sur SloganForge AI, propriété de IMBALL. En utilisant notre service, vous acceptez ces conditions d'utilisation. Veuillez les lire attentivement.",
				},
			},
			{
				Heading:    "1. Acceptation des Conditions",
				Paragraphs: []string{
					"En accédant ou en utilisant SloganForge AI, vous acceptez d'être lié par ces conditions d'utilisation. Si vous n'acceptez pas ces conditions, veuillez ne pas utiliser notre service.",
				},
			},
			{
				Heading:    "2. Description du Service",
				Paragraphs: []string{
					"SloganForge AI est un générateur de slogans basé sur l'intelligence artificielle qui crée des slogans personnalisés pour les entreprises et les marques. Le service permet également d'exporter les slogans générés au format PDF.",
				},
			},
			{
				Heading:    "3. Propriété Intellectuelle",
				Paragraphs: []string{
					"Les slogans générés par SloganForge AI sont destinés à l'usage des utilisateurs. Cependant, IMBALL ne garantit pas que les slogans générés ne violent pas les droits de propriété intellectuelle de tiers. Les utilisateurs sont responsables de vérifier la disponibilité des slogans avant utilisation commerciale.",
					"IMBALL conserve tous les droits, titres et intérêts sur la plateforme SloganForge AI, y compris tous les logiciels, idées, concepts, marques, et contenus créés par notre équipe.",
				},
			},
			{
				Heading:    "4. Limitation de Responsabilité",
				Paragraphs: []string{
					`SloganForge AI est fourni "tel quel" sans garantie d'aucune sorte. IMBALL ne sera pas responsable des dommages directs, indirects, accessoires, spéciaux ou consécutifs résultant de l'utilisation ou de l'impossibilité d'utiliser notre service.`,
				},
			},
			{
				Heading:    "5. Utilisation Acceptable",
				Paragraphs: []string{"Vous acceptez de ne pas utiliser SloganForge AI pour :"},
				Items: []string{
					"Créer ou promouvoir du contenu illégal, offensant, diffamatoire, ou discriminatoire",
					"Perturber ou surcharger nos serveurs ou réseaux",
					"Accéder à des parties de notre service auxquelles vous n'êtes pas autorisé",
					"Collecter des données utilisateurs sans leur consentement explicite",
				},
			},
			{
				Heading:    "6. Modifications du Service",
				Paragraphs: []string{
					"IMBALL se réserve le droit de modifier ou d'interrompre temporairement ou définitivement SloganForge AI (ou toute partie de celui-ci) avec ou sans préavis, sans encourir de responsabilité envers vous ou un tiers.",
				},
			},
			{
				Heading:    "7. Juridiction et Loi Applicable",
				Paragraphs: []string{
					"Ces conditions sont régies par les lois françaises. Tout litige découlant de ou lié à ces conditions sera soumis à la juridiction exclusive des tribunaux français.",
				},
			},
			{
				Heading:    "8. Contact",
				Paragraphs: []string{
					"Si vous avez des questions concernant ces conditions d'utilisation, veuillez nous contacter à l'adresse suivante : IMBALL, contact@imball-official.com",
				},
			},
		},
		Updated: "Dernière mise à jour : 2 Mai 2025",
	},
}
