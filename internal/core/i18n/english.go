package i18n

var english = Messages{
	Lang: English,
	Site: SiteMessages{Title: "SloganForge AI"},
	Nav: NavMessages{
		Home:     "Home",
		Generate: "Generator",
		Language: "Language",
	},
	Hero: HeroMessages{
		Title:       "Your perfect slogan,",
		Subtitle:    "in just 10 seconds.",
		Description: "Let AI work for you! Generate professional and impactful slogans for your business in just a few clicks.",
		CTA:         "Try for free",
		Examples:    "See examples",
	},
	Form: FormMessages{
		Title:               "Slogan Generator",
		Company:             "Company Name",
		CompanyPlaceholder:  "e.g. TechVision",
		Industry:            "Industry",
		IndustryPlaceholder: "e.g. Technology, Food, Fashion",
		Keywords:            "Keywords (separated by commas)",
		KeywordsPlaceholder: "e.g. innovation, sustainability, quality",
		Tone:                "Desired Tone",
		ToneProfessional:    "Professional",
		ToneCreative:        "Creative",
		ToneFriendly:        "Friendly",
		ToneBold:            "Bold",
		Generate:            "Generate Slogans",
		Generating:          "Generating...",
	},
	Results: ResultsMessages{
		Title:        "Your Generated Slogans",
		Refine:       "Refine Results",
		LengthAll:    "All",
		LengthShort:  "Short",
		LengthMedium: "Medium",
		LengthLong:   "Long",
		Rate:         "Rate this slogan",
		Copy:         "Copy",
		Copied:       "Copied!",
		Customize:    "Customize",
		Download:     "Download as PDF",
		Empty:        `Complete the form and click "Generate" to see your slogans here.`,
	},
	Export: ExportMessages{
		Title:          "Customize your slogan",
		Font:           "Font",
		Color:          "Color",
		Size:           "Size",
		Logo:           "Add logo",
		LogoUpload:     "Upload",
		LogoPosition:   "Logo position",
		LogoSize:       "Logo size",
		Background:     "Background",
		Alignment:      "Alignment",
		AlignLeft:      "Left",
		AlignCenter:    "Center",
		AlignRight:     "Right",
		PositionTop:    "Top",
		PositionBottom: "Bottom",
		PositionLeft:   "Left",
		PositionRight:  "Right",
		Preview:        "Preview",
		Refresh:        "Refresh preview",
		Download:       "Download as PDF",
		DownloadPNG:    "Download as PNG",
		DownloadText:   "Download as text",
		Format:         "Format",
		Portrait:       "Portrait",
		Landscape:      "Landscape",
		Back:           "Back to slogans",
	},
	Features: FeaturesMessages{
		Title: "Why use SloganForge AI?",
		AI: FeatureMessages{
			Title:       "AI-Powered",
			Description: "Our advanced algorithm generates unique slogans tailored to your business.",
		},
		Fast: FeatureMessages{
			Title:       "Fast & Efficient",
			Description: "Get dozens of creative ideas in just seconds.",
		},
		Custom: FeatureMessages{
			Title:       "Highly Customizable",
			Description: "Customize your slogans and export them in high resolution.",
		},
		Multilingual: FeatureMessages{
			Title:       "Multilingual",
			Description: "Generate slogans in both English and French.",
		},
	},
	Footer: FooterMessages{
		Copyright: "© 2025 SloganForge AI. All rights reserved.",
		Privacy:   "Privacy Policy",
		Terms:     "Terms of Service",
		Contact:   "Contact",
	},
	Errors: ErrorMessages{
		Company:         "Company name is required.",
		Industry:        "Industry is required.",
		Keywords:        "Enter at least one keyword.",
		Rating:          "Rating must be between 1 and 5.",
		Style:           "The customization options are invalid.",
		Logo:            "The logo must be a PNG, JPEG or GIF image.",
		NotFound:        "This slogan no longer exists. Generate a new set.",
		TooManyRequests: "Too many requests. Try again in a few seconds.",
		Internal:        "Something went wrong. Please try again.",
	},
	Privacy: LegalPage{
		Title:    "Privacy Policy",
		Sections: []LegalSection{
			{
				Heading:    "Introduction",
				Paragraphs: []string{
					"At IMBALL, owner of SloganForge AI, we take the protection of your personal data very seriously. This privacy policy explains how we collect, use and protect your information when you use our service.",
				},
			},
			{
				Heading:    "Information We Collect",
				Paragraphs: []string{"When you use SloganForge AI, we may collect the following information:"},
				Items: []string{
					"The data you enter in our slogan generator (company name, industry, etc.)",
					"Information about your browser and device",
					"IP address and approximate location data",
					"The generated slogans and your preferences",
				},
			},
			{
				Heading:    "How We Use Information",
				Paragraphs: []string{"We use the collected information to:"},
				Items: []string{
					"Provide, operate and improve our service",
					"Improve the quality of the generated slogans",
					"Understand how users interact with our service",
					"Detect and prevent fraud",
				},
			},
			{
				Heading:    "Data Protection",
				Paragraphs: []string{
					"IMBALL implements appropriate security measures to protect your personal information against unauthorized access, use, disclosure, alteration or destruction.",
				},
			},
			{
				Heading:    "Cookies and Similar Technologies",
				Paragraphs: []string{
					"We use cookies and similar technologies to improve your experience on our site, analyze our traffic and personalize content.",
				},
			},
			{
				Heading:    "Information Sharing",
				Paragraphs: []string{"We do not sell your personal data. We may share some information with:"},
				Items: []string{
					"Our service providers who help us operate our service",
					"Legal authorities when we are legally required to",
				},
			},
			{
				Heading:    "Your Rights",
				Paragraphs: []string{
					"Depending on your jurisdiction, you may have certain rights regarding your personal data, including the right to access, correct or delete your data.",
				},
			},
			{
				Heading:    "Changes to this Policy",
				Paragraphs: []string{
					"We may update this privacy policy from time to time. We encourage you to review this page regularly to stay informed of any changes.",
				},
			},
			{
				Heading:    "Contact",
				Paragraphs: []string{
					"If you have any questions about our privacy policy, please contact us at: IMBALL, contact@imball-official.com",
				},
			},
		},
		Updated: "Last updated: May 2, 2025",
	},
	Terms: LegalPage{
		Title:    "Terms of Service",
		Sections: []LegalSection{
			{
				Heading:    "Introduction",
				Paragraphs: []string{
					"Welcome to SloganForge AI, owned by IMBALL. By using our service, you agree to these terms of service. Please read them carefully.",
				},
			},
			{
				Heading:    "1. Acceptance of Terms",
				Paragraphs: []string{
					"By accessing or using SloganForge AI, you agree to be bound by these terms of service. If you do not accept these terms, please do not use our service.",
				},
			},
			{
				Heading:    "2. Description of Service",
				Paragraphs: []string{
					"SloganForge AI is an artificial-intelligence based slogan generator that creates personalized slogans for companies and brands. The service also lets you export generated slogans as PDF.",
				},
			},
			{
				Heading:    "3. Intellectual Property",
				Paragraphs: []string{
					"Slogans generated by SloganForge AI are intended for the use of our users. However, IMBALL does not guarantee that generated slogans do not infringe the intellectual property rights of third parties. Users are responsible for checking the availability of slogans before commercial use.",
					"IMBALL retains all rights, title and interest in the SloganForge AI platform, including all software, ideas, concepts, trademarks and content created by our team.",
				},
			},
			{
				Heading:    "4. Limitation of Liability",
				Paragraphs: []string{
					`SloganForge AI is provided "as is" without warranty of any kind. IMBALL shall not be liable for any direct, indirect, incidental, special or consequential damages resulting from the use of, or inability to use, our service.`,
				},
			},
			{
				Heading:    "5. Acceptable Use",
				Paragraphs: []string{"You agree not to use SloganForge AI to:"},
				Items: []string{
					"Create or promote illegal, offensive, defamatory or discriminatory content",
					"Disrupt or overload our servers or networks",
					"Access parts of our service you are not authorized to access",
					"Collect user data without their explicit consent",
				},
			},
			{
				Heading:    "6. Changes to the Service",
				Paragraphs: []string{
					"IMBALL reserves the right to modify or discontinue, temporarily or permanently, SloganForge AI (or any part of it) with or without notice, without liability to you or any third party.",
				},
			},
			{
				Heading:    "7. Governing Law and Jurisdiction",
				Paragraphs: []string{
					"These terms are governed by French law. Any dispute arising out of or relating to these terms shall be subject to the exclusive jurisdiction of the French courts.",
				},
			},
			{
				Heading:    "8. Contact",
				Paragraphs: []string{
					"If you have any questions about these terms of service, please contact us at: IMBALL, contact@imball-official.com",
				},
			},
		},
		Updated: "Last updated: May 2, 2025",
	},
}
