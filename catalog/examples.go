package catalog

import (
	chainbad "github.com/sghaida/patterns/behavioural/chain/bad"
	chaingood "github.com/sghaida/patterns/behavioural/chain/good"
	commandbad "github.com/sghaida/patterns/behavioural/command/bad"
	commandgood "github.com/sghaida/patterns/behavioural/command/good"
	iteratorbad "github.com/sghaida/patterns/behavioural/iterator/bad"
	iteratorgood "github.com/sghaida/patterns/behavioural/iterator/good"
	iteratorseq "github.com/sghaida/patterns/behavioural/iterator/seq"
	mediatorbad "github.com/sghaida/patterns/behavioural/mediator/bad"
	"github.com/sghaida/patterns/behavioural/mediator/fireforget"
	mediatorgood "github.com/sghaida/patterns/behavioural/mediator/good"
	mediatorobserver "github.com/sghaida/patterns/behavioural/mediator/observer"
	mementobad "github.com/sghaida/patterns/behavioural/memento/bad"
	mementogood "github.com/sghaida/patterns/behavioural/memento/good"
	observerbad "github.com/sghaida/patterns/behavioural/observer/bad"
	observergood "github.com/sghaida/patterns/behavioural/observer/good"
	statebad "github.com/sghaida/patterns/behavioural/state/bad"
	stategood "github.com/sghaida/patterns/behavioural/state/good"
	strategybad "github.com/sghaida/patterns/behavioural/strategy/bad"
	strategygood "github.com/sghaida/patterns/behavioural/strategy/good"
	templatebad "github.com/sghaida/patterns/behavioural/template/bad"
	templategood "github.com/sghaida/patterns/behavioural/template/good"
	visitorbad "github.com/sghaida/patterns/behavioural/visitor/bad"
	visitorgood "github.com/sghaida/patterns/behavioural/visitor/good"
	abstractfactorybad "github.com/sghaida/patterns/creational/abstractfactory/bad"
	abstractfactorygood "github.com/sghaida/patterns/creational/abstractfactory/good"
	builderbad "github.com/sghaida/patterns/creational/builder/bad"
	buildergeneric "github.com/sghaida/patterns/creational/builder/generic"
	buildergood "github.com/sghaida/patterns/creational/builder/good"
	factorymethodbad "github.com/sghaida/patterns/creational/factorymethod/bad"
	factorymethodgood "github.com/sghaida/patterns/creational/factorymethod/good"
	prototypebad "github.com/sghaida/patterns/creational/prototype/bad"
	prototypegood "github.com/sghaida/patterns/creational/prototype/good"
	prototyperegistry "github.com/sghaida/patterns/creational/prototype/registry"
	singletonbad "github.com/sghaida/patterns/creational/singleton/bad"
	singletongood "github.com/sghaida/patterns/creational/singleton/good"
	adapterbad "github.com/sghaida/patterns/structural/adapter/bad"
	adaptergood "github.com/sghaida/patterns/structural/adapter/good"
	bridgebad "github.com/sghaida/patterns/structural/bridge/bad"
	bridgegood "github.com/sghaida/patterns/structural/bridge/good"
	compositebad "github.com/sghaida/patterns/structural/composite/bad"
	compositegood "github.com/sghaida/patterns/structural/composite/good"
	decoratorbad "github.com/sghaida/patterns/structural/decorator/bad"
	decoratorgood "github.com/sghaida/patterns/structural/decorator/good"
	facadebad "github.com/sghaida/patterns/structural/facade/bad"
	facadegood "github.com/sghaida/patterns/structural/facade/good"
	flyweightbad "github.com/sghaida/patterns/structural/flyweight/bad"
	flyweightgood "github.com/sghaida/patterns/structural/flyweight/good"
	proxybad "github.com/sghaida/patterns/structural/proxy/bad"
	proxygood "github.com/sghaida/patterns/structural/proxy/good"
)

// Default returns a registry holding every example, grouped by category.
func Default() *Registry {
	return NewRegistry().
		// behavioural
		Provide(Example{Pattern: "chain", Variant: "bad", Category: Behavioural, Run: chainbad.Run,
			Summary: "approval limits hard-coded in an if/else ladder"}).
		Provide(Example{Pattern: "chain", Variant: "good", Category: Behavioural, Run: chaingood.Run,
			Summary: "generic approver chain with explicit fall-through"}).
		Provide(Example{Pattern: "command", Variant: "bad", Category: Behavioural, Run: commandbad.Run,
			Summary: "remote calls receivers directly, no undo"}).
		Provide(Example{Pattern: "command", Variant: "good", Category: Behavioural, Run: commandgood.Run,
			Summary: "commands with LIFO undo history"}).
		Provide(Example{Pattern: "iterator", Variant: "bad", Category: Behavioural, Run: iteratorbad.Run,
			Summary: "traversal logic written inline by the client"}).
		Provide(Example{Pattern: "iterator", Variant: "good", Category: Behavioural, Run: iteratorgood.Run,
			Summary: "depth-first and breadth-first iterators over a tree"}).
		Provide(Example{Pattern: "iterator", Variant: "seq", Category: Behavioural, Run: iteratorseq.Run,
			Summary: "range-over-func sequences and a resettable cursor"}).
		Provide(Example{Pattern: "mediator", Variant: "bad", Category: Behavioural, Run: mediatorbad.Run,
			Summary: "chat members hold references to each other"}).
		Provide(Example{Pattern: "mediator", Variant: "good", Category: Behavioural, Run: mediatorgood.Run,
			Summary: "chat mediator broadcasting concurrently"}).
		Provide(Example{Pattern: "mediator", Variant: "observer", Category: Behavioural, Run: mediatorobserver.Run,
			Summary: "mediator publishing events to subscribers and waiting for all"}).
		Provide(Example{Pattern: "mediator", Variant: "fireforget", Category: Behavioural, Run: fireforget.Run,
			Summary: "mediator publishing events without waiting"}).
		Provide(Example{Pattern: "memento", Variant: "bad", Category: Behavioural, Run: mementobad.Run,
			Summary: "history copies the editor's exposed fields"}).
		Provide(Example{Pattern: "memento", Variant: "good", Category: Behavioural, Run: mementogood.Run,
			Summary: "opaque snapshots with undo and redo"}).
		Provide(Example{Pattern: "observer", Variant: "bad", Category: Behavioural, Run: observerbad.Run,
			Summary: "stock market calls every consumer by hand"}).
		Provide(Example{Pattern: "observer", Variant: "good", Category: Behavioural, Run: observergood.Run,
			Summary: "generic subject with unsubscribe and completion"}).
		Provide(Example{Pattern: "state", Variant: "bad", Category: Behavioural, Run: statebad.Run,
			Summary: "document workflow as an enum and conditionals"}).
		Provide(Example{Pattern: "state", Variant: "good", Category: Behavioural, Run: stategood.Run,
			Summary: "document workflow as state objects"}).
		Provide(Example{Pattern: "strategy", Variant: "bad", Category: Behavioural, Run: strategybad.Run,
			Summary: "payment methods in a conditional ladder"}).
		Provide(Example{Pattern: "strategy", Variant: "good", Category: Behavioural, Run: strategygood.Run,
			Summary: "payment strategies chosen through a factory"}).
		Provide(Example{Pattern: "template", Variant: "bad", Category: Behavioural, Run: templatebad.Run,
			Summary: "duplicated import pipelines per format"}).
		Provide(Example{Pattern: "template", Variant: "good", Category: Behavioural, Run: templategood.Run,
			Summary: "one import skeleton with pluggable steps"}).
		Provide(Example{Pattern: "visitor", Variant: "bad", Category: Behavioural, Run: visitorbad.Run,
			Summary: "type switches spread over every operation"}).
		Provide(Example{Pattern: "visitor", Variant: "good", Category: Behavioural, Run: visitorgood.Run,
			Summary: "HTML export and table of contents as visitors"}).
		// creational
		Provide(Example{Pattern: "abstractfactory", Variant: "bad", Category: Creational, Run: abstractfactorybad.Run,
			Summary: "theme checks at every widget construction"}).
		Provide(Example{Pattern: "abstractfactory", Variant: "good", Category: Creational, Run: abstractfactorygood.Run,
			Summary: "theme factories producing matching widgets"}).
		Provide(Example{Pattern: "builder", Variant: "bad", Category: Creational, Run: builderbad.Run,
			Summary: "cars and manuals assembled with struct literals"}).
		Provide(Example{Pattern: "builder", Variant: "good", Category: Creational, Run: buildergood.Run,
			Summary: "director driving car and manual builders"}).
		Provide(Example{Pattern: "builder", Variant: "generic", Category: Creational, Run: buildergeneric.Run,
			Summary: "type-parameterised builders with validated Build"}).
		Provide(Example{Pattern: "factorymethod", Variant: "bad", Category: Creational, Run: factorymethodbad.Run,
			Summary: "controller hard-wired to one view engine"}).
		Provide(Example{Pattern: "factorymethod", Variant: "good", Category: Creational, Run: factorymethodgood.Run,
			Summary: "controllers supplying their own view engine"}).
		Provide(Example{Pattern: "prototype", Variant: "bad", Category: Creational, Run: prototypebad.Run,
			Summary: "copies made by hand at the call site"}).
		Provide(Example{Pattern: "prototype", Variant: "good", Category: Creational, Run: prototypegood.Run,
			Summary: "shallow and deep clones owned by the product"}).
		Provide(Example{Pattern: "prototype", Variant: "registry", Category: Creational, Run: prototyperegistry.Run,
			Summary: "named prototypes handed out as typed clones"}).
		Provide(Example{Pattern: "singleton", Variant: "bad", Category: Creational, Run: singletonbad.Run,
			Summary: "a new file logger wherever one is needed"}).
		Provide(Example{Pattern: "singleton", Variant: "good", Category: Creational, Run: singletongood.Run,
			Summary: "one process-wide logger behind sync.Once"}).
		// structural
		Provide(Example{Pattern: "adapter", Variant: "bad", Category: Structural, Run: adapterbad.Run,
			Summary: "vendor filter cannot plug into the editor"}).
		Provide(Example{Pattern: "adapter", Variant: "good", Category: Structural, Run: adaptergood.Run,
			Summary: "adapter wraps the vendor filter"}).
		Provide(Example{Pattern: "bridge", Variant: "bad", Category: Structural, Run: bridgebad.Run,
			Summary: "one type per shape and renderer"}).
		Provide(Example{Pattern: "bridge", Variant: "good", Category: Structural, Run: bridgegood.Run,
			Summary: "shapes holding a swappable renderer"}).
		Provide(Example{Pattern: "composite", Variant: "bad", Category: Structural, Run: compositebad.Run,
			Summary: "box totals via type switch"}).
		Provide(Example{Pattern: "composite", Variant: "good", Category: Structural, Run: compositegood.Run,
			Summary: "boxes and products behind one Item interface"}).
		Provide(Example{Pattern: "decorator", Variant: "bad", Category: Structural, Run: decoratorbad.Run,
			Summary: "a storage type per feature combination"}).
		Provide(Example{Pattern: "decorator", Variant: "good", Category: Structural, Run: decoratorgood.Run,
			Summary: "encryption, compression and caching stacked at run time"}).
		Provide(Example{Pattern: "facade", Variant: "bad", Category: Structural, Run: facadebad.Run,
			Summary: "client sequences the home theater and forgets shutdown"}).
		Provide(Example{Pattern: "facade", Variant: "good", Category: Structural, Run: facadegood.Run,
			Summary: "home theater facade with concurrent power on and off"}).
		Provide(Example{Pattern: "flyweight", Variant: "bad", Category: Structural, Run: flyweightbad.Run,
			Summary: "every character copies its style"}).
		Provide(Example{Pattern: "flyweight", Variant: "good", Category: Structural, Run: flyweightgood.Run,
			Summary: "characters sharing style flyweights"}).
		Provide(Example{Pattern: "proxy", Variant: "bad", Category: Structural, Run: proxybad.Run,
			Summary: "every video downloads up front"}).
		Provide(Example{Pattern: "proxy", Variant: "good", Category: Structural, Run: proxygood.Run,
			Summary: "lazy proxy downloads on first render"})
}
