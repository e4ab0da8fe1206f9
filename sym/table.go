package sym

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// The symbol catalog. Ordering follows the classic TeX grouping:
// relations, binary operators, delimiters, punctuation, ordinary
// symbols, big operators, spacing, accents, and finally the implicit
// letter/digit ranges.

func init() {
	defineRelations()
	defineBinaryOps()
	defineDelimiters()
	definePunctuation()
	defineOrds()
	defineBigOps()
	defineSpacing()
	defineAccents()
	defineAlphanumerics()
	defineTextSymbols()
	tracer().Debugf("symbol table populated: %d math, %d text entries",
		len(mathTable), len(textTable))
}

func defineRelations() {
	define(MathMode, Main, Rel, '=', "=")
	define(MathMode, Main, Rel, '<', "<")
	define(MathMode, Main, Rel, '>', ">")
	define(MathMode, Main, Rel, ':', ":")
	define(MathMode, Main, Rel, '≡', "\\equiv")
	define(MathMode, Main, Rel, '≺', "\\prec")
	define(MathMode, Main, Rel, '≻', "\\succ")
	define(MathMode, Main, Rel, '∼', "\\sim")
	define(MathMode, Main, Rel, '⊥', "\\perp")
	define(MathMode, Main, Rel, '⪯', "\\preceq")
	define(MathMode, Main, Rel, '⪰', "\\succeq")
	define(MathMode, Main, Rel, '≃', "\\simeq")
	define(MathMode, Main, Rel, '∣', "\\mid")
	define(MathMode, Main, Rel, '≪', "\\ll")
	define(MathMode, Main, Rel, '≫', "\\gg")
	define(MathMode, Main, Rel, '≍', "\\asymp")
	define(MathMode, Main, Rel, '∥', "\\parallel")
	define(MathMode, Main, Rel, '≈', "\\approx")
	define(MathMode, Main, Rel, '≅', "\\cong")
	define(MathMode, Main, Rel, '≦', "\\leqq")
	define(MathMode, Main, Rel, '≤', "\\le")
	define(MathMode, Main, Rel, '≤', "\\leq")
	define(MathMode, Main, Rel, '≥', "\\ge")
	define(MathMode, Main, Rel, '≥', "\\geq")
	define(MathMode, Main, Rel, '≠', "\\neq")
	define(MathMode, Main, Rel, '≠', "\\ne")
	define(MathMode, Main, Rel, '∈', "\\in")
	define(MathMode, Main, Rel, '∉', "\\notin")
	define(MathMode, Main, Rel, '∋', "\\ni")
	define(MathMode, Main, Rel, '∋', "\\owns")
	define(MathMode, Main, Rel, '⊂', "\\subset")
	define(MathMode, Main, Rel, '⊃', "\\supset")
	define(MathMode, Main, Rel, '⊆', "\\subseteq")
	define(MathMode, Main, Rel, '⊇', "\\supseteq")
	define(MathMode, AMS, Rel, '⊊', "\\subsetneq")
	define(MathMode, AMS, Rel, '⊋', "\\supsetneq")
	define(MathMode, Main, Rel, '⊢', "\\vdash")
	define(MathMode, Main, Rel, '⊣', "\\dashv")
	define(MathMode, Main, Rel, '⊨', "\\models")
	define(MathMode, Main, Rel, '∝', "\\propto")
	define(MathMode, Main, Rel, '⌣', "\\smile")
	define(MathMode, Main, Rel, '⌢', "\\frown")
	define(MathMode, Main, Rel, '≐', "\\doteq")
	define(MathMode, Main, Rel, '∔', "\\dotplus")
	define(MathMode, AMS, Rel, '≜', "\\triangleq")
	define(MathMode, AMS, Rel, '↾', "\\upharpoonright")
	define(MathMode, AMS, Rel, '↿', "\\upharpoonleft")
	define(MathMode, AMS, Rel, '⇂', "\\downharpoonright")
	define(MathMode, AMS, Rel, '⇃', "\\downharpoonleft")
	define(MathMode, Main, Rel, ':', "\\vcentcolon")
	define(MathMode, Main, Rel, '∷', "\\dblcolon")
	define(MathMode, Main, Rel, '≔', "\\coloneqq")
	define(MathMode, Main, Rel, '⩴', "\\Coloneqq")
	define(MathMode, Main, Rel, '≕', "\\eqqcolon")
	define(MathMode, Main, Rel, '≕', "\\Eqqcolon")
	// arrows carry relation spacing
	define(MathMode, Main, Rel, '→', "\\rightarrow")
	define(MathMode, Main, Rel, '→', "\\to")
	define(MathMode, Main, Rel, '←', "\\leftarrow")
	define(MathMode, Main, Rel, '←', "\\gets")
	define(MathMode, Main, Rel, '↔', "\\leftrightarrow")
	define(MathMode, Main, Rel, '⇒', "\\Rightarrow")
	define(MathMode, Main, Rel, '⇐', "\\Leftarrow")
	define(MathMode, Main, Rel, '⇔', "\\Leftrightarrow")
	define(MathMode, Main, Rel, '↦', "\\mapsto")
	define(MathMode, Main, Rel, '↩', "\\hookleftarrow")
	define(MathMode, Main, Rel, '↪', "\\hookrightarrow")
	define(MathMode, Main, Rel, '↑', "\\uparrow")
	define(MathMode, Main, Rel, '↓', "\\downarrow")
	define(MathMode, Main, Rel, '↕', "\\updownarrow")
	define(MathMode, Main, Rel, '⇑', "\\Uparrow")
	define(MathMode, Main, Rel, '⇓', "\\Downarrow")
	define(MathMode, Main, Rel, '⇕', "\\Updownarrow")
	define(MathMode, Main, Rel, '↗', "\\nearrow")
	define(MathMode, Main, Rel, '↘', "\\searrow")
	define(MathMode, Main, Rel, '↙', "\\swarrow")
	define(MathMode, Main, Rel, '↖', "\\nwarrow")
	define(MathMode, Main, Rel, '⇌', "\\rightleftharpoons")
	define(MathMode, Main, Rel, '⟵', "\\longleftarrow")
	define(MathMode, Main, Rel, '⟶', "\\longrightarrow")
	define(MathMode, Main, Rel, '⟷', "\\longleftrightarrow")
	define(MathMode, Main, Rel, '⟸', "\\Longleftarrow")
	define(MathMode, Main, Rel, '⟹', "\\Longrightarrow")
	define(MathMode, Main, Rel, '⟺', "\\Longleftrightarrow")
	define(MathMode, Main, Rel, '⟼', "\\longmapsto")
	// negated AMS relations
	define(MathMode, AMS, Rel, '≮', "\\nless")
	define(MathMode, AMS, Rel, '≯', "\\ngtr")
	define(MathMode, AMS, Rel, '⊀', "\\nprec")
	define(MathMode, AMS, Rel, '⊁', "\\nsucc")
	define(MathMode, AMS, Rel, '∤', "\\nmid")
	define(MathMode, AMS, Rel, '∦', "\\nparallel")
	define(MathMode, AMS, Rel, '⊬', "\\nvdash")
	define(MathMode, AMS, Rel, '⊭', "\\nvDash")
	define(MathMode, AMS, Rel, '↚', "\\nleftarrow")
	define(MathMode, AMS, Rel, '↛', "\\nrightarrow")
	define(MathMode, AMS, Rel, '⇍', "\\nLeftarrow")
	define(MathMode, AMS, Rel, '⇏', "\\nRightarrow")
}

func defineBinaryOps() {
	define(MathMode, Main, Bin, '+', "+")
	define(MathMode, Main, Bin, '−', "-")
	define(MathMode, Main, Bin, '∗', "*")
	define(MathMode, Main, Bin, '⋅', "\\cdot")
	define(MathMode, Main, Bin, '∘', "\\circ")
	define(MathMode, Main, Bin, '±', "\\pm")
	define(MathMode, Main, Bin, '∓', "\\mp")
	define(MathMode, Main, Bin, '×', "\\times")
	define(MathMode, Main, Bin, '÷', "\\div")
	define(MathMode, Main, Bin, '∖', "\\setminus")
	define(MathMode, Main, Bin, '∩', "\\cap")
	define(MathMode, Main, Bin, '∪', "\\cup")
	define(MathMode, Main, Bin, '∧', "\\wedge")
	define(MathMode, Main, Bin, '∧', "\\land")
	define(MathMode, Main, Bin, '∨', "\\vee")
	define(MathMode, Main, Bin, '∨', "\\lor")
	define(MathMode, Main, Bin, '⊕', "\\oplus")
	define(MathMode, Main, Bin, '⊖', "\\ominus")
	define(MathMode, Main, Bin, '⊗', "\\otimes")
	define(MathMode, Main, Bin, '⊘', "\\oslash")
	define(MathMode, Main, Bin, '⊙', "\\odot")
	define(MathMode, Main, Bin, '⊎', "\\uplus")
	define(MathMode, Main, Bin, '⊓', "\\sqcap")
	define(MathMode, Main, Bin, '⊔', "\\sqcup")
	define(MathMode, Main, Bin, '⋆', "\\star")
	define(MathMode, Main, Bin, '∙', "\\bullet")
	define(MathMode, Main, Bin, '†', "\\dagger")
	define(MathMode, Main, Bin, '‡', "\\ddagger")
	define(MathMode, Main, Bin, '⋄', "\\diamond")
	define(MathMode, Main, Bin, '△', "\\bigtriangleup")
	define(MathMode, Main, Bin, '▽', "\\bigtriangledown")
	define(MathMode, Main, Bin, '◁', "\\triangleleft")
	define(MathMode, Main, Bin, '▷', "\\triangleright")
	define(MathMode, Main, Bin, '≀', "\\wr")
	define(MathMode, Main, Bin, '⨿', "\\amalg")
	define(MathMode, AMS, Bin, '⋉', "\\ltimes")
	define(MathMode, AMS, Bin, '⋊', "\\rtimes")
	define(MathMode, AMS, Bin, '⊠', "\\boxtimes")
	define(MathMode, AMS, Bin, '⊞', "\\boxplus")
	define(MathMode, AMS, Bin, '⌅', "\\barwedge")
	define(MathMode, AMS, Bin, '⋒', "\\Cap")
	define(MathMode, AMS, Bin, '⋓', "\\Cup")
	define(MathMode, AMS, Bin, '∸', "\\dotminus")
	define(MathMode, AMS, Bin, '⋋', "\\leftthreetimes")
	define(MathMode, AMS, Bin, '⋌', "\\rightthreetimes")
	define(MathMode, AMS, Bin, '⊺', "\\intercal")
	define(MathMode, AMS, Bin, '⊛', "\\circledast")
	define(MathMode, AMS, Bin, '⊚', "\\circledcirc")
	define(MathMode, AMS, Bin, '⊝', "\\circleddash")
	define(MathMode, AMS, Bin, '⋇', "\\divideontimes")
}

func defineDelimiters() {
	define(MathMode, Main, Open, '(', "(")
	define(MathMode, Main, Close, ')', ")")
	define(MathMode, Main, Open, '[', "[")
	define(MathMode, Main, Open, '[', "\\lbrack")
	define(MathMode, Main, Close, ']', "]")
	define(MathMode, Main, Close, ']', "\\rbrack")
	define(TextMode, Main, TextOrd, '[', "\\lbrack")
	define(TextMode, Main, TextOrd, ']', "\\rbrack")
	define(MathMode, Main, Open, '{', "\\{")
	define(MathMode, Main, Open, '{', "\\lbrace")
	define(MathMode, Main, Close, '}', "\\}")
	define(MathMode, Main, Close, '}', "\\rbrace")
	define(TextMode, Main, TextOrd, '{', "\\{")
	define(TextMode, Main, TextOrd, '}', "\\}")
	define(MathMode, Main, Open, '⌊', "\\lfloor")
	define(MathMode, Main, Close, '⌋', "\\rfloor")
	define(MathMode, Main, Open, '⌈', "\\lceil")
	define(MathMode, Main, Close, '⌉', "\\rceil")
	define(MathMode, Main, Open, '⟨', "\\langle")
	define(MathMode, Main, Close, '⟩', "\\rangle")
	define(MathMode, Main, Open, '⌜', "\\ulcorner")
	define(MathMode, Main, Close, '⌝', "\\urcorner")
	define(MathMode, Main, Open, '⌞', "\\llcorner")
	define(MathMode, Main, Close, '⌟', "\\lrcorner")
	define(MathMode, Main, MathOrd, '/', "/")
	define(MathMode, Main, MathOrd, '\\', "\\backslash")
	define(MathMode, Main, TextOrd, '|', "|")
	define(MathMode, Main, TextOrd, '∥', "\\|")
	define(MathMode, Main, TextOrd, '∣', "\\vert")
	define(MathMode, Main, TextOrd, '∥', "\\Vert")
	define(MathMode, Main, Rel, '⟦', "\\llbracket")
	define(MathMode, Main, Rel, '⟧', "\\rrbracket")
	define(MathMode, Main, Open, '(', "\\lparen")
	define(MathMode, Main, Close, ')', "\\rparen")
	define(MathMode, Main, Open, '∣', "\\lvert")
	define(MathMode, Main, Close, '∣', "\\rvert")
	define(MathMode, Main, Open, '∥', "\\lVert")
	define(MathMode, Main, Close, '∥', "\\rVert")
	define(MathMode, Main, Open, '⟮', "\\lgroup")
	define(MathMode, Main, Close, '⟯', "\\rgroup")
	define(MathMode, Main, Open, '⎰', "\\lmoustache")
	define(MathMode, Main, Close, '⎱', "\\rmoustache")
	define(MathMode, Main, Rel, '<', "\\lt")
	define(MathMode, Main, Rel, '>', "\\gt")
}

func definePunctuation() {
	define(MathMode, Main, Punct, ',', ",")
	define(MathMode, Main, Punct, ';', ";")
	define(MathMode, Main, Close, '?', "?")
	define(MathMode, Main, Close, '!', "!")
	define(MathMode, Main, Close, '‼', "!!")
}

func defineOrds() {
	// lowercase Greek, italic in math mode
	greek := []struct {
		r    rune
		name string
	}{
		{'α', "\\alpha"}, {'β', "\\beta"}, {'γ', "\\gamma"}, {'δ', "\\delta"},
		{'ϵ', "\\epsilon"}, {'ζ', "\\zeta"}, {'η', "\\eta"}, {'θ', "\\theta"},
		{'ι', "\\iota"}, {'κ', "\\kappa"}, {'λ', "\\lambda"}, {'μ', "\\mu"},
		{'ν', "\\nu"}, {'ξ', "\\xi"}, {'ο', "\\omicron"}, {'π', "\\pi"},
		{'ρ', "\\rho"}, {'σ', "\\sigma"}, {'τ', "\\tau"}, {'υ', "\\upsilon"},
		{'ϕ', "\\phi"}, {'χ', "\\chi"}, {'ψ', "\\psi"}, {'ω', "\\omega"},
		{'ε', "\\varepsilon"}, {'ϑ', "\\vartheta"}, {'ϖ', "\\varpi"},
		{'ϱ', "\\varrho"}, {'ς', "\\varsigma"}, {'φ', "\\varphi"},
	}
	for _, g := range greek {
		define(MathMode, Main, MathOrd, g.r, g.name)
	}
	// uppercase Greek is upright
	Greek := []struct {
		r    rune
		name string
	}{
		{'Γ', "\\Gamma"}, {'Δ', "\\Delta"}, {'Θ', "\\Theta"}, {'Λ', "\\Lambda"},
		{'Ξ', "\\Xi"}, {'Π', "\\Pi"}, {'Σ', "\\Sigma"}, {'Υ', "\\Upsilon"},
		{'Φ', "\\Phi"}, {'Ψ', "\\Psi"}, {'Ω', "\\Omega"},
	}
	for _, g := range Greek {
		define(MathMode, Main, MathOrd, g.r, g.name)
	}
	define(MathMode, Main, MathOrd, '∞', "\\infty")
	define(MathMode, Main, MathOrd, '′', "\\prime")
	define(MathMode, Main, MathOrd, 'ℏ', "\\hbar")
	define(MathMode, Main, MathOrd, 'ℓ', "\\ell")
	define(MathMode, Main, MathOrd, '℘', "\\wp")
	define(MathMode, Main, MathOrd, 'ℜ', "\\Re")
	define(MathMode, Main, MathOrd, 'ℑ', "\\Im")
	define(MathMode, Main, MathOrd, '∂', "\\partial")
	define(MathMode, Main, MathOrd, '∇', "\\nabla")
	define(MathMode, Main, MathOrd, '∅', "\\emptyset")
	define(MathMode, AMS, MathOrd, '∅', "\\varnothing")
	define(MathMode, Main, MathOrd, '¬', "\\neg")
	define(MathMode, Main, MathOrd, '¬', "\\lnot")
	define(MathMode, Main, MathOrd, '⊤', "\\top")
	define(MathMode, Main, MathOrd, '⊥', "\\bot")
	define(MathMode, Main, MathOrd, '∀', "\\forall")
	define(MathMode, Main, MathOrd, '∃', "\\exists")
	define(MathMode, AMS, MathOrd, '∄', "\\nexists")
	define(MathMode, Main, MathOrd, '♭', "\\flat")
	define(MathMode, Main, MathOrd, '♮', "\\natural")
	define(MathMode, Main, MathOrd, '♯', "\\sharp")
	define(MathMode, Main, MathOrd, '♣', "\\clubsuit")
	define(MathMode, Main, MathOrd, '♢', "\\diamondsuit")
	define(MathMode, Main, MathOrd, '♡', "\\heartsuit")
	define(MathMode, Main, MathOrd, '♠', "\\spadesuit")
	define(MathMode, Main, MathOrd, '√', "\\surd")
	define(MathMode, Main, MathOrd, '△', "\\triangle")
	define(MathMode, AMS, MathOrd, '□', "\\square")
	define(MathMode, AMS, MathOrd, '■', "\\blacksquare")
	define(MathMode, AMS, MathOrd, '◊', "\\lozenge")
	define(MathMode, AMS, MathOrd, '⧫', "\\blacklozenge")
	define(MathMode, AMS, MathOrd, 'ℵ', "\\aleph")
	define(MathMode, AMS, MathOrd, 'ℶ', "\\beth")
	define(MathMode, AMS, MathOrd, 'ℷ', "\\gimel")
	define(MathMode, AMS, MathOrd, 'ℸ', "\\daleth")
	define(MathMode, AMS, MathOrd, 'ℏ', "\\hslash")
	define(MathMode, AMS, MathOrd, '℧', "\\mho")
	define(MathMode, Main, MathOrd, '…', "\\mathellipsis")
	define(MathMode, Main, Inner, '⋯', "\\@cdots")
	define(MathMode, Main, MathOrd, '⋱', "\\ddots")
	define(MathMode, Main, MathOrd, '⋮', "\\vdots")
	define(MathMode, Main, MathOrd, '#', "\\#")
	define(MathMode, Main, MathOrd, '&', "\\&")
	define(MathMode, Main, MathOrd, '$', "\\$")
	define(MathMode, Main, MathOrd, '%', "\\%")
	define(MathMode, Main, MathOrd, '_', "\\_")
	define(TextMode, Main, TextOrd, '#', "\\#")
	define(TextMode, Main, TextOrd, '&', "\\&")
	define(TextMode, Main, TextOrd, '$', "\\$")
	define(TextMode, Main, TextOrd, '%', "\\%")
	define(TextMode, Main, TextOrd, '_', "\\_")
}

func defineBigOps() {
	bigOps := []struct {
		r    rune
		name string
	}{
		{'∑', "\\sum"}, {'∏', "\\prod"}, {'∐', "\\coprod"},
		{'⋀', "\\bigwedge"}, {'⋁', "\\bigvee"},
		{'⋂', "\\bigcap"}, {'⋃', "\\bigcup"},
		{'⨁', "\\bigoplus"}, {'⨂', "\\bigotimes"}, {'⨀', "\\bigodot"},
		{'⨄', "\\biguplus"}, {'⨆', "\\bigsqcup"},
		{'∫', "\\int"}, {'∫', "\\intop"}, {'∬', "\\iint"}, {'∭', "\\iiint"},
		{'∮', "\\oint"}, {'∯', "\\oiint"}, {'∰', "\\oiiint"},
		{'∫', "\\smallint"},
	}
	for _, o := range bigOps {
		define(MathMode, Main, Op, o.r, o.name)
	}
}

func defineSpacing() {
	define(MathMode, Main, Spacing, ' ', "\\ ")
	define(MathMode, Main, Spacing, ' ', "\\space")
	define(MathMode, Main, Spacing, ' ', "\\nobreakspace")
	define(TextMode, Main, Spacing, ' ', "\\ ")
	define(TextMode, Main, Spacing, ' ', " ")
	define(TextMode, Main, Spacing, ' ', "\\space")
	define(TextMode, Main, Spacing, ' ', "\\nobreakspace")
	define(MathMode, Main, Spacing, 0, "\\nobreak")
	define(MathMode, Main, Spacing, 0, "\\allowbreak")
}

func defineAccents() {
	accents := []struct {
		r    rune
		name string
	}{
		{'́', "\\acute"}, {'̀', "\\grave"}, {'̈', "\\ddot"},
		{'̃', "\\tilde"}, {'̄', "\\bar"}, {'̆', "\\breve"},
		{'̌', "\\check"}, {'̂', "\\hat"}, {'⃗', "\\vec"},
		{'̇', "\\dot"}, {'̊', "\\mathring"},
	}
	for _, a := range accents {
		define(MathMode, Main, AccentToken, a.r, a.name)
	}
	// text-mode accent spellings
	textAccents := []struct {
		r    rune
		name string
	}{
		{'́', "\\'"}, {'̀', "\\`"}, {'̂', "\\^"}, {'̃', "\\~"},
		{'̄', "\\="}, {'̆', "\\u"}, {'̇', "\\."}, {'̈', "\\\""},
		{'̊', "\\r"}, {'̌', "\\v"}, {'̋', "\\H"},
	}
	for _, a := range textAccents {
		define(TextMode, Main, AccentToken, a.r, a.name)
	}
}

func defineAlphanumerics() {
	for r := '0'; r <= '9'; r++ {
		defineBoth(Main, TextOrd, 0, string(r))
	}
	for r := 'a'; r <= 'z'; r++ {
		define(MathMode, Main, MathOrd, 0, string(r))
		define(TextMode, Main, TextOrd, 0, string(r))
	}
	for r := 'A'; r <= 'Z'; r++ {
		define(MathMode, Main, MathOrd, 0, string(r))
		define(TextMode, Main, TextOrd, 0, string(r))
	}
	define(MathMode, Main, MathOrd, 'ı', "\\imath")
	define(MathMode, Main, MathOrd, 'ȷ', "\\jmath")
	define(TextMode, Main, TextOrd, 'ı', "\\i")
	define(TextMode, Main, TextOrd, 'ȷ', "\\j")
	define(TextMode, Main, TextOrd, 'ß', "\\ss")
	define(TextMode, Main, TextOrd, 'æ', "\\ae")
	define(TextMode, Main, TextOrd, 'œ', "\\oe")
	define(TextMode, Main, TextOrd, 'ø', "\\o")
	define(TextMode, Main, TextOrd, 'Æ', "\\AE")
	define(TextMode, Main, TextOrd, 'Œ', "\\OE")
	define(TextMode, Main, TextOrd, 'Ø', "\\O")
	// the dual-mode characters TeX treats as ordinary in both modes
	both := "*+-/:=?@.\"'"
	for _, r := range both {
		if _, ok := textTable[string(r)]; !ok {
			define(TextMode, Main, TextOrd, 0, string(r))
		}
	}
	define(MathMode, Main, MathOrd, '′', "'")
	define(MathMode, Main, TextOrd, '@', "@")
	define(MathMode, Main, TextOrd, '.', ".")
	define(MathMode, Main, TextOrd, '"', "\"")
}

func defineTextSymbols() {
	define(TextMode, Main, TextOrd, '–', "--")
	define(TextMode, Main, TextOrd, '–', "\\textendash")
	define(TextMode, Main, TextOrd, '—', "---")
	define(TextMode, Main, TextOrd, '—', "\\textemdash")
	define(TextMode, Main, TextOrd, '‘', "`")
	define(TextMode, Main, TextOrd, '’', "\\textquoteright")
	define(TextMode, Main, TextOrd, '“', "``")
	define(TextMode, Main, TextOrd, '”', "''")
	define(TextMode, Main, TextOrd, '§', "\\S")
	define(TextMode, Main, TextOrd, '¶', "\\P")
	define(TextMode, Main, TextOrd, '†', "\\dag")
	define(TextMode, Main, TextOrd, '‡', "\\ddag")
	define(TextMode, Main, TextOrd, '…', "\\textellipsis")
	defineBoth(Main, TextOrd, '…', "\\ldots")
	define(TextMode, Main, TextOrd, '(', "(")
	define(TextMode, Main, TextOrd, ')', ")")
	define(TextMode, Main, TextOrd, '[', "[")
	define(TextMode, Main, TextOrd, ']', "]")
	define(TextMode, Main, TextOrd, '!', "!")
	define(TextMode, Main, TextOrd, '?', "?")
	define(TextMode, Main, TextOrd, ',', ",")
	define(TextMode, Main, TextOrd, ';', ";")
	define(TextMode, Main, TextOrd, '|', "\\textbar")
	define(TextMode, Main, TextOrd, '<', "\\textless")
	define(TextMode, Main, TextOrd, '>', "\\textgreater")
	define(TextMode, Main, TextOrd, '\\', "\\textbackslash")
	define(TextMode, Main, TextOrd, '^', "\\textasciicircum")
	define(TextMode, Main, TextOrd, '~', "\\textasciitilde")
	define(TextMode, Main, TextOrd, '°', "\\degree")
	define(TextMode, Main, TextOrd, '£', "\\pounds")
	define(TextMode, Main, TextOrd, '°', "\\textdegree")
	define(TextMode, Main, TextOrd, '✓', "\\checkmark")
	define(MathMode, Main, TextOrd, '✓', "\\checkmark")
	define(MathMode, Main, TextOrd, '°', "\\degree")
	define(MathMode, Main, MathOrd, '£', "\\pounds")
}
