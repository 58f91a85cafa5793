package catalog

// themeOrder pins classification order. A reference whose book appears
// under several themes always classifies as the earliest one listed here.
var themeOrder = []string{
	"hope",
	"love",
	"strength",
	"motivation",
	"wisdom",
	"comfort",
	"philosophical",
}

// booksByTheme biases remote fetches toward books relevant to each theme.
var booksByTheme = map[string][]string{
	"hope":          {"ROM", "PSA", "ISA", "JER"},
	"love":          {"1CO", "1JN", "SNG", "JHN"},
	"strength":      {"PSA", "ISA", "PHP", "2CO"},
	"motivation":    {"PHP", "JOS", "2TI", "HEB"},
	"wisdom":        {"PRO", "ECC", "JOB", "JAM"},
	"comfort":       {"PSA", "ISA", "MAT", "2CO"},
	"philosophical": {"ECC", "JOB", "PRO", "ROM"},
}

// bookCodes maps leading words of reference strings to canonical codes.
// Numbered books ("1 Corinthians") split on the digit and never match; they
// classify as wisdom, which is acceptable for a display label.
var bookCodes = map[string]string{
	"JOHN":         "JHN",
	"PSALMS":       "PSA",
	"PSALM":        "PSA",
	"PROVERBS":     "PRO",
	"ISAIAH":       "ISA",
	"MATTHEW":      "MAT",
	"ROMANS":       "ROM",
	"PHILIPPIANS":  "PHP",
	"ECCLESIASTES": "ECC",
	"JEREMIAH":     "JER",
	"DEUTERONOMY":  "DEU",
	"JOSHUA":       "JOS",
	"GALATIANS":    "GAL",
	"COLOSSIANS":   "COL",
	"HEBREWS":      "HEB",
	"REVELATION":   "REV",
	"JAMES":        "JAM",
	"JOB":          "JOB",
}

var quotesByTheme = map[string][]Quote{
	"hope": {
		{
			Text:      "For I know the plans I have for you, declares the LORD, plans for welfare and not for evil, to give you a future and a hope.",
			Reference: "Jeremiah 29:11",
			Theme:     "hope",
		},
		{
			Text:      "May the God of hope fill you with all joy and peace in believing, so that by the power of the Holy Spirit you may abound in hope.",
			Reference: "Romans 15:13",
			Theme:     "hope",
		},
		{
			Text:      "But they who wait for the LORD shall renew their strength; they shall mount up with wings like eagles; they shall run and not be weary; they shall walk and not faint.",
			Reference: "Isaiah 40:31",
			Theme:     "hope",
		},
		{
			Text:      "For whatever was written in former days was written for our instruction, that through endurance and through the encouragement of the Scriptures we might have hope.",
			Reference: "Romans 15:4",
			Theme:     "hope",
		},
		{
			Text:      "Rejoice in hope, be patient in tribulation, be constant in prayer.",
			Reference: "Romans 12:12",
			Theme:     "hope",
		},
	},
	"love": {
		{
			Text:      "For God so loved the world, that he gave his only Son, that whoever believes in him should not perish but have eternal life.",
			Reference: "John 3:16",
			Theme:     "love",
		},
		{
			Text:      "Love is patient and kind; love does not envy or boast; it is not arrogant or rude. It does not insist on its own way; it is not irritable or resentful; it does not rejoice at wrongdoing, but rejoices with the truth.",
			Reference: "1 Corinthians 13:4-6",
			Theme:     "love",
		},
		{
			Text:      "We love because he first loved us.",
			Reference: "1 John 4:19",
			Theme:     "love",
		},
		{
			Text:      "Greater love has no one than this, that someone lay down his life for his friends.",
			Reference: "John 15:13",
			Theme:     "love",
		},
		{
			Text:      "And above all these put on love, which binds everything together in perfect harmony.",
			Reference: "Colossians 3:14",
			Theme:     "love",
		},
	},
	"strength": {
		{
			Text:      "I can do all things through him who strengthens me.",
			Reference: "Philippians 4:13",
			Theme:     "strength",
		},
		{
			Text:      "The LORD is my strength and my shield; in him my heart trusts, and I am helped; my heart exults, and with my song I give thanks to him.",
			Reference: "Psalm 28:7",
			Theme:     "strength",
		},
		{
			Text:      "Be strong and courageous. Do not fear or be in dread of them, for it is the LORD your God who goes with you. He will not leave you or forsake you.",
			Reference: "Deuteronomy 31:6",
			Theme:     "strength",
		},
		{
			Text:      "But he said to me, 'My grace is sufficient for you, for my power is made perfect in weakness.' Therefore I will boast all the more gladly of my weaknesses, so that the power of Christ may rest upon me.",
			Reference: "2 Corinthians 12:9",
			Theme:     "strength",
		},
		{
			Text:      "Fear not, for I am with you; be not dismayed, for I am your God; I will strengthen you, I will help you, I will uphold you with my righteous right hand.",
			Reference: "Isaiah 41:10",
			Theme:     "strength",
		},
	},
	"motivation": {
		{
			Text:      "And let us not grow weary of doing good, for in due season we will reap, if we do not give up.",
			Reference: "Galatians 6:9",
			Theme:     "motivation",
		},
		{
			Text:      "Therefore, my beloved brothers, be steadfast, immovable, always abounding in the work of the Lord, knowing that in the Lord your labor is not in vain.",
			Reference: "1 Corinthians 15:58",
			Theme:     "motivation",
		},
		{
			Text:      "But as for you, be strong and do not give up, for your work will be rewarded.",
			Reference: "2 Chronicles 15:7",
			Theme:     "motivation",
		},
		{
			Text:      "Have I not commanded you? Be strong and courageous. Do not be frightened, and do not be dismayed, for the LORD your God is with you wherever you go.",
			Reference: "Joshua 1:9",
			Theme:     "motivation",
		},
		{
			Text:      "For I am sure that neither death nor life, nor angels nor rulers, nor things present nor things to come, nor powers, nor height nor depth, nor anything else in all creation, will be able to separate us from the love of God in Christ Jesus our Lord.",
			Reference: "Romans 8:38-39",
			Theme:     "motivation",
		},
	},
	"wisdom": {
		{
			Text:      "The fear of the LORD is the beginning of wisdom, and the knowledge of the Holy One is insight.",
			Reference: "Proverbs 9:10",
			Theme:     "wisdom",
		},
		{
			Text:      "If any of you lacks wisdom, let him ask God, who gives generously to all without reproach, and it will be given him.",
			Reference: "James 1:5",
			Theme:     "wisdom",
		},
		{
			Text:      "Blessed is the one who finds wisdom, and the one who gets understanding, for the gain from her is better than gain from silver and her profit better than gold.",
			Reference: "Proverbs 3:13-14",
			Theme:     "wisdom",
		},
		{
			Text:      "For the LORD gives wisdom; from his mouth come knowledge and understanding.",
			Reference: "Proverbs 2:6",
			Theme:     "wisdom",
		},
		{
			Text:      "The way of a fool is right in his own eyes, but a wise man listens to advice.",
			Reference: "Proverbs 12:15",
			Theme:     "wisdom",
		},
	},
	"comfort": {
		{
			Text:      "Blessed are those who mourn, for they shall be comforted.",
			Reference: "Matthew 5:4",
			Theme:     "comfort",
		},
		{
			Text:      "Come to me, all who labor and are heavy laden, and I will give you rest.",
			Reference: "Matthew 11:28",
			Theme:     "comfort",
		},
		{
			Text:      "The LORD is near to the brokenhearted and saves the crushed in spirit.",
			Reference: "Psalm 34:18",
			Theme:     "comfort",
		},
		{
			Text:      "Blessed be the God and Father of our Lord Jesus Christ, the Father of mercies and God of all comfort, who comforts us in all our affliction.",
			Reference: "2 Corinthians 1:3-4",
			Theme:     "comfort",
		},
		{
			Text:      "He will wipe away every tear from their eyes, and death shall be no more, neither shall there be mourning, nor crying, nor pain anymore, for the former things have passed away.",
			Reference: "Revelation 21:4",
			Theme:     "comfort",
		},
	},
	"philosophical": {
		{
			Text:      "For now we see in a mirror dimly, but then face to face. Now I know in part; then I shall know fully, even as I have been fully known.",
			Reference: "1 Corinthians 13:12",
			Theme:     "philosophical",
		},
		{
			Text:      "What has been is what will be, and what has been done is what will be done, and there is nothing new under the sun.",
			Reference: "Ecclesiastes 1:9",
			Theme:     "philosophical",
		},
		{
			Text:      "For the invisible things of him from the creation of the world are clearly seen, being understood by the things that are made, even his eternal power and Godhead; so that they are without excuse.",
			Reference: "Romans 1:20",
			Theme:     "philosophical",
		},
		{
			Text:      "For we brought nothing into the world, and we cannot take anything out of the world.",
			Reference: "1 Timothy 6:7",
			Theme:     "philosophical",
		},
		{
			Text:      "Vanity of vanities, says the Preacher, vanity of vanities! All is vanity. What does man gain by all the toil at which he toils under the sun?",
			Reference: "Ecclesiastes 1:2-3",
			Theme:     "philosophical",
		},
	},
}
