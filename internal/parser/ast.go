package parser

// Node is a node in the surface syntax tree. The tree is purely syntactic;
// the transform layer maps it one-to-one onto term variants.
type Node interface {
	node()
}

// Ident is a bare name reference.
type Ident struct {
	Name string
}

// NatLit is a non-negative integer literal.
type NatLit struct {
	Value int
}

// Wild is the wildcard '?'.
type Wild struct{}

// Lambda is an abstraction \param: classifier. body.
type Lambda struct {
	Param      string
	Classifier Node
	Body       Node
}

// DepAbs is a dependant abstraction |param: classifier. body.
type DepAbs struct {
	Param      string
	Classifier Node
	Body       Node
}

// DepType is a dependant type (param : classifier) -> body.
type DepType struct {
	Param      string
	Classifier Node
	Body       Node
}

// Arrow is the right-associative sugar from -> to.
type Arrow struct {
	From Node
	To   Node
}

// Apply is application by juxtaposition, left-associative.
type Apply struct {
	Func Node
	Arg  Node
}

func (*Ident) node()   {}
func (*NatLit) node()  {}
func (*Wild) node()    {}
func (*Lambda) node()  {}
func (*DepAbs) node()  {}
func (*DepType) node() {}
func (*Arrow) node()   {}
func (*Apply) node()   {}

// Decl is a top-level declaration preceding the file's final expression.
type Decl interface {
	decl()
}

// TypeParam is one declared parameter of an algebraic type.
type TypeParam struct {
	Name       string
	Classifier Node
}

// CtorDecl declares one constructor of an algebraic type.
type CtorDecl struct {
	Name       string
	Classifier Node
}

// TypeDecl declares an algebraic type and its constructors.
type TypeDecl struct {
	Name   string
	Params []TypeParam
	Ctors  []CtorDecl
}

// LetDecl declares a value binding with a classifier annotation.
type LetDecl struct {
	Name  string
	Annot Node
	Value Node
}

func (*TypeDecl) decl() {}
func (*LetDecl) decl()  {}

// File is a parsed source unit: declarations followed by an optional
// expression to check.
type File struct {
	Decls []Decl
	Expr  Node
}
