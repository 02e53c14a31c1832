/*
Package args splits the raw argument payload of a single markup tag into typed arguments.

Argument Queue Overview:
-----------------------
The outer scanner isolates a tag such as <pride:bi|0.2> and hands the payload after the
first delimiter ("bi|0.2") to a Queue. Resolvers then pull arguments off the queue one
at a time.

	raw payload            Queue                    Resolver
	     |                   |                          |
	     v                   v                          v
	"'a:b':c"  --->  [ head=0 ] --Pop()-->  Argument("a:b")
	                 [ head=6 ] --Pop()-->  Argument("c")
	                 [ head=7 ] --HasNext()--> false

Quoting:
-------
A span opened by ' or " runs until the same quote character closes it. Delimiters
inside a span belong to the argument. Quotes are stripped only when the whole argument
is one quoted span:

	'hello:world'   ->  hello:world
	ab'cd'ef        ->  ab'cd'ef      (partial, left alone)
	'unterminated   ->  'unterminated (left alone)

A Queue is owned by a single resolution call and is not safe for concurrent use.
*/
package args
