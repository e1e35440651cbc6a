package scene

import (
	"github.com/matteoilardi/goray/pkg/camera"
	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/imageio"
	"github.com/matteoilardi/goray/pkg/material"
	"github.com/matteoilardi/goray/pkg/shapes"
)

// Parser consumes tokens from a Lexer and builds a Scene by recursive
// descent. Shapes reference materials by name; the DSL's float variables
// are resolved into plain float64 as they are used.
type Parser struct {
	lexer          *Lexer
	floatVariables map[string]float64
	materials      map[string]material.Material
	world          *shapes.World
	cam            camera.Camera
	camSet         bool
}

// ParseScene lexes and parses source, returning the assembled Scene or the
// first GrammarError encountered.
func ParseScene(source string) (*Scene, error) {
	p := &Parser{
		lexer:          NewLexer(source),
		floatVariables: map[string]float64{},
		materials:      map[string]material.Material{},
		world:          shapes.NewWorld(),
	}
	if err := p.parseSceneBody(); err != nil {
		return nil, err
	}
	return &Scene{
		FloatVariables: p.floatVariables,
		Materials:      p.materials,
		World:          p.world,
		Camera:         p.cam,
	}, nil
}

func (p *Parser) parseSceneBody() error {
	for {
		tok, err := p.lexer.ReadToken()
		if err != nil {
			return err
		}
		if tok.Type == StopToken {
			return nil
		}
		if tok.Type != KeywordToken {
			return newGrammarError(tok.Location, "expected a declaration keyword")
		}
		if err := p.parseDecl(tok); err != nil {
			return err
		}
	}
}

func (p *Parser) parseDecl(kwTok Token) error {
	switch kwTok.Keyword {
	case KeywordFloat:
		return p.parseFloatDecl()
	case KeywordMaterial:
		return p.parseMaterialDecl()
	case KeywordSphere:
		return p.parseShapeDecl(kwTok.Location, true)
	case KeywordPlane:
		return p.parseShapeDecl(kwTok.Location, false)
	case KeywordCamera:
		return p.parseCameraDecl(kwTok.Location)
	case KeywordPointLight:
		return p.parsePointLightDecl()
	default:
		return newGrammarError(kwTok.Location, "unexpected keyword in declaration position")
	}
}

// --- token helpers ---

func (p *Parser) expectSymbol(sym rune) error {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return err
	}
	if tok.Type != SymbolToken || tok.Symbol != sym {
		return newGrammarError(tok.Location, "expected symbol %q", sym)
	}
	return nil
}

func (p *Parser) expectKeyword(kw KeywordEnum) error {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return err
	}
	if tok.Type != KeywordToken || tok.Keyword != kw {
		return newGrammarError(tok.Location, "expected a keyword")
	}
	return nil
}

func (p *Parser) expectIdentifier() (string, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return "", err
	}
	if tok.Type != IdentifierToken {
		return "", newGrammarError(tok.Location, "expected an identifier")
	}
	return tok.Identifier, nil
}

func (p *Parser) expectString() (string, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return "", err
	}
	if tok.Type != LiteralStringToken {
		return "", newGrammarError(tok.Location, "expected a string literal")
	}
	return tok.Str, nil
}

func (p *Parser) expectNumberLiteral() (float64, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return 0, err
	}
	if tok.Type != LiteralNumberToken {
		return 0, newGrammarError(tok.Location, "expected a numeric literal")
	}
	return tok.Number, nil
}

// parseNum implements the `num` production: a literal float, or an
// identifier resolved against the declared float variables.
func (p *Parser) parseNum() (float64, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return 0, err
	}
	switch tok.Type {
	case LiteralNumberToken:
		return tok.Number, nil
	case IdentifierToken:
		v, ok := p.floatVariables[tok.Identifier]
		if !ok {
			return 0, newGrammarError(tok.Location, "unknown float variable %q", tok.Identifier)
		}
		return v, nil
	default:
		return 0, newGrammarError(tok.Location, "expected a number or a float variable")
	}
}

// --- declarations ---

func (p *Parser) parseFloatDecl() error {
	name, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	value, err := p.expectNumberLiteral()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}
	p.floatVariables[name] = value
	return nil
}

func (p *Parser) parseMaterialDecl() error {
	name, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	brdf, err := p.parseBRDF()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	emitted, err := p.parsePigment()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}
	p.materials[name] = material.Material{BRDF: brdf, EmittedRadiance: emitted}
	return nil
}

func (p *Parser) resolveMaterial(tok Token) (material.Material, error) {
	mat, ok := p.materials[tok.Identifier]
	if !ok {
		return material.Material{}, newGrammarError(tok.Location, "unknown material %q", tok.Identifier)
	}
	return mat, nil
}

func (p *Parser) parseShapeDecl(loc SourceLocation, isSphere bool) error {
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	transform, err := p.parseTransform()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	matTok, err := p.lexer.ReadToken()
	if err != nil {
		return err
	}
	if matTok.Type != IdentifierToken {
		return newGrammarError(matTok.Location, "expected a material name")
	}
	mat, err := p.resolveMaterial(matTok)
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	if isSphere {
		p.world.AddShape(shapes.NewSphere(transform, mat))
	} else {
		p.world.AddShape(shapes.NewPlane(transform, mat))
	}
	return nil
}

func (p *Parser) parseCameraDecl(loc SourceLocation) error {
	if p.camSet {
		return newGrammarError(loc, "a camera has already been declared")
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}

	kindTok, err := p.lexer.ReadToken()
	if err != nil {
		return err
	}
	if kindTok.Type != KeywordToken || (kindTok.Keyword != KeywordOrthogonal && kindTok.Keyword != KeywordPerspective) {
		return newGrammarError(kindTok.Location, "expected \"orthogonal\" or \"perspective\"")
	}

	if err := p.expectSymbol(','); err != nil {
		return err
	}
	transform, err := p.parseTransform()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	aspectRatio, err := p.parseNum()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	distance, err := p.parseNum()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	if kindTok.Keyword == KeywordOrthogonal {
		p.cam = camera.NewOrthogonalCamera(aspectRatio, transform)
	} else {
		p.cam = camera.NewPerspectiveCamera(distance, aspectRatio, transform)
	}
	p.camSet = true
	return nil
}

func (p *Parser) parsePointLightDecl() error {
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	point, err := p.parsePoint()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	color, err := p.parseColor()
	if err != nil {
		return err
	}

	radius := 0.0
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return err
	}
	if tok.Type == SymbolToken && tok.Symbol == ',' {
		radius, err = p.parseNum()
		if err != nil {
			return err
		}
	} else {
		p.lexer.UnreadToken(tok)
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	p.world.AddLight(shapes.NewPointLightSource(point, color, radius))
	return nil
}

// --- pigments, BRDFs ---

func (p *Parser) parsePigment() (material.Pigment, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Type != KeywordToken {
		return nil, newGrammarError(tok.Location, "expected a pigment")
	}

	switch tok.Keyword {
	case KeywordUniform:
		if err := p.expectSymbol('('); err != nil {
			return nil, err
		}
		c, err := p.parseColor()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(')'); err != nil {
			return nil, err
		}
		return material.NewUniformPigment(c), nil

	case KeywordCheckered:
		if err := p.expectSymbol('('); err != nil {
			return nil, err
		}
		c1, err := p.parseColor()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(','); err != nil {
			return nil, err
		}
		c2, err := p.parseColor()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(','); err != nil {
			return nil, err
		}
		n, err := p.expectNumberLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(')'); err != nil {
			return nil, err
		}
		return material.NewCheckeredPigment(c1, c2, int(n)), nil

	case KeywordImage:
		if err := p.expectSymbol('('); err != nil {
			return nil, err
		}
		pathTok, err := p.lexer.ReadToken()
		if err != nil {
			return nil, err
		}
		if pathTok.Type != LiteralStringToken {
			return nil, newGrammarError(pathTok.Location, "expected a string literal")
		}
		if err := p.expectSymbol(')'); err != nil {
			return nil, err
		}
		img, err := imageio.ReadPFMFile(pathTok.Str)
		if err != nil {
			return nil, newGrammarError(pathTok.Location, "cannot load image pigment %q: %v", pathTok.Str, err)
		}
		return material.NewImagePigment(img), nil

	default:
		return nil, newGrammarError(tok.Location, "expected a pigment keyword")
	}
}

func (p *Parser) parseBRDF() (material.BRDF, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return nil, err
	}
	if tok.Type != KeywordToken || (tok.Keyword != KeywordDiffuse && tok.Keyword != KeywordSpecular) {
		return nil, newGrammarError(tok.Location, "expected \"diffuse\" or \"specular\"")
	}
	if err := p.expectSymbol('('); err != nil {
		return nil, err
	}
	pigment, err := p.parsePigment()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(')'); err != nil {
		return nil, err
	}
	if tok.Keyword == KeywordDiffuse {
		return material.NewDiffuseBRDF(pigment, 1.0), nil
	}
	return material.NewSpecularBRDF(pigment), nil
}

// --- transforms ---

func (p *Parser) parseTransform() (geometry.Transformation, error) {
	t, err := p.parseAtom()
	if err != nil {
		return geometry.Transformation{}, err
	}
	for {
		tok, err := p.lexer.ReadToken()
		if err != nil {
			return geometry.Transformation{}, err
		}
		if tok.Type != SymbolToken || tok.Symbol != '*' {
			p.lexer.UnreadToken(tok)
			return t, nil
		}
		next, err := p.parseAtom()
		if err != nil {
			return geometry.Transformation{}, err
		}
		t = t.Compose(next)
	}
}

func (p *Parser) parseAtom() (geometry.Transformation, error) {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return geometry.Transformation{}, err
	}
	if tok.Type != KeywordToken {
		return geometry.Transformation{}, newGrammarError(tok.Location, "expected a transformation")
	}

	switch tok.Keyword {
	case KeywordIdentity:
		return geometry.Identity(), nil
	case KeywordTranslation:
		if err := p.expectSymbol('('); err != nil {
			return geometry.Transformation{}, err
		}
		v, err := p.parseVec()
		if err != nil {
			return geometry.Transformation{}, err
		}
		if err := p.expectSymbol(')'); err != nil {
			return geometry.Transformation{}, err
		}
		return geometry.Translation(v), nil
	case KeywordScaling:
		if err := p.expectSymbol('('); err != nil {
			return geometry.Transformation{}, err
		}
		v, err := p.parseVec()
		if err != nil {
			return geometry.Transformation{}, err
		}
		if err := p.expectSymbol(')'); err != nil {
			return geometry.Transformation{}, err
		}
		return geometry.Scaling(v.X, v.Y, v.Z), nil
	case KeywordRotationX, KeywordRotationY, KeywordRotationZ:
		if err := p.expectSymbol('('); err != nil {
			return geometry.Transformation{}, err
		}
		deg, err := p.parseNum()
		if err != nil {
			return geometry.Transformation{}, err
		}
		if err := p.expectSymbol(')'); err != nil {
			return geometry.Transformation{}, err
		}
		rad := geometry.DegToRads(deg)
		switch tok.Keyword {
		case KeywordRotationX:
			return geometry.RotationX(rad), nil
		case KeywordRotationY:
			return geometry.RotationY(rad), nil
		default:
			return geometry.RotationZ(rad), nil
		}
	default:
		return geometry.Transformation{}, newGrammarError(tok.Location, "expected a transformation keyword")
	}
}

// --- literals ---

func (p *Parser) parseVec() (geometry.Vec, error) {
	if err := p.expectSymbol('['); err != nil {
		return geometry.Vec{}, err
	}
	x, err := p.parseNum()
	if err != nil {
		return geometry.Vec{}, err
	}
	if err := p.expectSymbol(','); err != nil {
		return geometry.Vec{}, err
	}
	y, err := p.parseNum()
	if err != nil {
		return geometry.Vec{}, err
	}
	if err := p.expectSymbol(','); err != nil {
		return geometry.Vec{}, err
	}
	z, err := p.parseNum()
	if err != nil {
		return geometry.Vec{}, err
	}
	if err := p.expectSymbol(']'); err != nil {
		return geometry.Vec{}, err
	}
	return geometry.NewVec(x, y, z), nil
}

func (p *Parser) parsePoint() (geometry.Point, error) {
	v, err := p.parseVec()
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.NewPoint(v.X, v.Y, v.Z), nil
}

func (p *Parser) parseColor() (colors.Color, error) {
	if err := p.expectSymbol('<'); err != nil {
		return colors.Color{}, err
	}
	r, err := p.parseNum()
	if err != nil {
		return colors.Color{}, err
	}
	if err := p.expectSymbol(','); err != nil {
		return colors.Color{}, err
	}
	g, err := p.parseNum()
	if err != nil {
		return colors.Color{}, err
	}
	if err := p.expectSymbol(','); err != nil {
		return colors.Color{}, err
	}
	b, err := p.parseNum()
	if err != nil {
		return colors.Color{}, err
	}
	if err := p.expectSymbol('>'); err != nil {
		return colors.Color{}, err
	}
	return colors.New(r, g, b), nil
}
