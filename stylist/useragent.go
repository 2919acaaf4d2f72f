package stylist

// userAgentCSS is a small fixed built-in stylesheet loaded as
// Origin=UserAgent at engine construction, so ComputedValues for an
// unstyled document are non-empty without inventing new scope: it is
// just another stylesheet flowing through the same cascade
// (SPEC_FULL.md "Supplemented features"). Grounded on
// other_examples/.../louis14 cascade.go's applyUserAgentStyles, which
// hard-codes the same handful of block/inline/heading/list defaults.
const userAgentCSS = `
html, body, div, p, h1, h2, h3, h4, h5, h6, ul, ol, li, header, footer, section, article, nav, blockquote, form, table {
  display: block;
}
span, a, b, i, em, strong, small, code, label, img {
  display: inline;
}
h1, h2, h3, h4, h5, h6, p, ul, ol, blockquote {
  margin-top: 16px;
  margin-bottom: 16px;
}
ul, ol {
  margin-left: 40px;
  padding-left: 0px;
}
li {
  display: list-item;
}
a {
  color: inherit;
}
strong, b {
  font-weight: bold;
}
em, i {
  font-style: italic;
}
h1 { font-size: 32px; }
h2 { font-size: 24px; }
h3 { font-size: 19px; }
`
